// Package scoringdomain derives team, member and coach scores from a
// snapshot of stored rows. Every function here is pure: the same snapshot
// always yields the same scores, and nothing is cached between calls.
package scoringdomain

import "time"

// Team is a team row as the scoring engine sees it.
type Team struct {
	ID           int64
	Name         string
	TotalMembers int
	CoachName    string
	Department   string
	IsActive     bool
}

// Member is a member row.
type Member struct {
	ID       int64
	TeamID   int64
	Name     string
	IsLeader bool
	IsActive bool
}

// Coach is a coaches-table row.
type Coach struct {
	Name       string
	Department string
	IsActive   bool
}

// Event is an event row.
type Event struct {
	ID           int64
	Name         string
	EventType    string
	EventDate    time.Time
	MemberPoints int
	CoachPoints  int
	IsActive     bool
}

// Attendance is an attendance row. Exactly one of MemberID and CoachName
// should be set; rows breaking that rule are ignored by scoring and listed
// by the integrity report.
type Attendance struct {
	ID           int64
	EventID      int64
	MemberID     *int64
	CoachName    *string
	Attended     bool
	PointsEarned int
	Sessions     int
}

// Bonus is a bonus_points row.
type Bonus struct {
	ID        int64
	TeamID    int64
	Points    int
	Reason    string
	AwardedBy string
	AwardedAt time.Time
}

// Snapshot is every row scoring reads, loaded together.
type Snapshot struct {
	Teams      []Team
	Members    []Member
	Coaches    []Coach
	Events     []Event
	Attendance []Attendance
	Bonuses    []Bonus
}

// isMemberRow reports whether a is a well-formed member row.
func (a Attendance) isMemberRow() bool {
	return a.MemberID != nil && a.CoachName == nil
}

// isCoachRow reports whether a is a well-formed coach row.
func (a Attendance) isCoachRow() bool {
	return a.CoachName != nil && a.MemberID == nil
}

// index holds lookups built once per computation.
type index struct {
	teams         map[int64]Team
	teamsByName   map[string]Team
	members       map[int64]Member
	events        map[int64]Event
	teamsByCoach  map[string][]Team
	memberRows    map[int64][]Attendance
	coachRows     map[string][]Attendance
	bonusesByTeam map[int64][]Bonus
}

func newIndex(s Snapshot) *index {
	idx := &index{
		teams:         make(map[int64]Team, len(s.Teams)),
		teamsByName:   make(map[string]Team, len(s.Teams)),
		members:       make(map[int64]Member, len(s.Members)),
		events:        make(map[int64]Event, len(s.Events)),
		teamsByCoach:  make(map[string][]Team),
		memberRows:    make(map[int64][]Attendance),
		coachRows:     make(map[string][]Attendance),
		bonusesByTeam: make(map[int64][]Bonus),
	}
	for _, t := range s.Teams {
		idx.teams[t.ID] = t
		idx.teamsByName[t.Name] = t
		if t.CoachName != "" {
			idx.teamsByCoach[t.CoachName] = append(idx.teamsByCoach[t.CoachName], t)
		}
	}
	for _, m := range s.Members {
		idx.members[m.ID] = m
	}
	for _, e := range s.Events {
		idx.events[e.ID] = e
	}
	for _, a := range s.Attendance {
		switch {
		case a.isMemberRow():
			idx.memberRows[*a.MemberID] = append(idx.memberRows[*a.MemberID], a)
		case a.isCoachRow():
			idx.coachRows[*a.CoachName] = append(idx.coachRows[*a.CoachName], a)
		}
	}
	for _, b := range s.Bonuses {
		idx.bonusesByTeam[b.TeamID] = append(idx.bonusesByTeam[b.TeamID], b)
	}
	return idx
}
