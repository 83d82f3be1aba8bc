package authdomain

// Role represents an administrator's role for authorization purposes.
type Role string

const (
	// RoleEditor may manage the roster, events and attendance.
	RoleEditor Role = "editor"
	// RoleAdmin may do everything an editor can, plus award bonus points and
	// read the audit and integrity reports.
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleEditor, RoleAdmin:
		return true
	default:
		return false
	}
}

// Allows reports whether a holder of r may perform an action requiring required.
func (r Role) Allows(required Role) bool {
	switch r {
	case RoleAdmin:
		return required.IsValid()
	case RoleEditor:
		return required == RoleEditor
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}
