package rosterdomain

import "time"

// Team is a hackathon team. CoachName links the team to its coach by name.
type Team struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	TotalMembers int       `json:"total_members"`
	CoachName    string    `json:"coach_name,omitempty"`
	Department   string    `json:"department,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Member belongs to exactly one team. Name is the full name used for lookup.
type Member struct {
	ID          int64     `json:"id"`
	TeamID      int64     `json:"team_id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Department  string    `json:"department,omitempty"`
	IsLeader    bool      `json:"is_leader"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Coach is a team coach, identified by name.
type Coach struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	Teams      []string  `json:"teams"`
}

// TeamWithMembers is a team and its roster.
type TeamWithMembers struct {
	Team
	Members []Member `json:"members"`
}

// MemberCountMatches reports whether the declared member count agrees with
// the number of member rows.
func (t TeamWithMembers) MemberCountMatches() bool {
	return t.TotalMembers == len(t.Members)
}
