package scoringdomain

import "sort"

// Counts are row counts per table. Teams, members, coaches and events count
// active rows only.
type Counts struct {
	Teams      int `json:"teams"`
	Members    int `json:"members"`
	Coaches    int `json:"coaches"`
	Events     int `json:"events"`
	Attendance int `json:"attendance"`
	Bonuses    int `json:"bonuses"`
}

// MemberCountMismatch is a team whose declared size differs from its
// active member rows.
type MemberCountMismatch struct {
	TeamName string `json:"team_name"`
	Declared int    `json:"declared"`
	Actual   int    `json:"actual"`
}

// IntegrityReport lists data problems that scoring tolerates but an
// administrator should fix. Valid is true when no problem was found.
type IntegrityReport struct {
	Valid                 bool                  `json:"valid"`
	Counts                Counts                `json:"counts"`
	MemberCountMismatches []MemberCountMismatch `json:"member_count_mismatches"`
	UndefinedRates        []string              `json:"undefined_rates"`
	OrphanedCoachNames    []string              `json:"orphaned_coach_names"`
	InvalidAttendance     []int64               `json:"invalid_attendance"`
	Scores                []TeamScore           `json:"scores"`
}

// CheckIntegrity inspects s and recomputes every team score.
func CheckIntegrity(s Snapshot) IntegrityReport {
	report := IntegrityReport{
		MemberCountMismatches: []MemberCountMismatch{},
		UndefinedRates:        []string{},
		OrphanedCoachNames:    []string{},
		InvalidAttendance:     []int64{},
	}

	for _, t := range s.Teams {
		if t.IsActive {
			report.Counts.Teams++
		}
	}
	for _, m := range s.Members {
		if m.IsActive {
			report.Counts.Members++
		}
	}
	for _, c := range s.Coaches {
		if c.IsActive {
			report.Counts.Coaches++
		}
	}
	for _, e := range s.Events {
		if e.IsActive {
			report.Counts.Events++
		}
	}
	report.Counts.Attendance = len(s.Attendance)
	report.Counts.Bonuses = len(s.Bonuses)

	members := activeMembersByTeam(s)
	coachNames := make(map[string]struct{})
	for _, t := range s.Teams {
		if t.CoachName != "" {
			coachNames[t.CoachName] = struct{}{}
		}
		if !t.IsActive {
			continue
		}
		if actual := len(members[t.ID]); actual != t.TotalMembers {
			report.MemberCountMismatches = append(report.MemberCountMismatches, MemberCountMismatch{
				TeamName: t.Name,
				Declared: t.TotalMembers,
				Actual:   actual,
			})
		}
		if t.TotalMembers == 0 {
			report.UndefinedRates = append(report.UndefinedRates, t.Name)
		}
	}

	orphans := make(map[string]struct{})
	for _, a := range s.Attendance {
		switch {
		case a.isCoachRow():
			if _, ok := coachNames[*a.CoachName]; !ok {
				orphans[*a.CoachName] = struct{}{}
			}
		case !a.isMemberRow():
			report.InvalidAttendance = append(report.InvalidAttendance, a.ID)
		}
	}
	for name := range orphans {
		report.OrphanedCoachNames = append(report.OrphanedCoachNames, name)
	}
	sort.Strings(report.OrphanedCoachNames)

	report.Scores = Leaderboard(s, 0)
	report.Valid = len(report.MemberCountMismatches) == 0 &&
		len(report.UndefinedRates) == 0 &&
		len(report.OrphanedCoachNames) == 0 &&
		len(report.InvalidAttendance) == 0
	return report
}
