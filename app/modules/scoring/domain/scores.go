package scoringdomain

import (
	"sort"

	rosterdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/domain"
)

// TeamScore is a team's derived score.
//
// FinalScore = MemberPoints + CoachPoints + BonusPoints. MemberPoints sums
// the attendance of the team's active members, CoachPoints the attended rows
// recorded under the team's coach name, BonusPoints the team's awards.
type TeamScore struct {
	Rank                  int    `json:"rank"`
	TeamID                int64  `json:"team_id"`
	TeamName              string `json:"team_name"`
	CoachName             string `json:"coach_name"`
	Department            string `json:"department"`
	TotalMembers          int    `json:"total_members"`
	MemberPoints          int    `json:"member_points"`
	CoachPoints           int    `json:"coach_points"`
	BonusPoints           int    `json:"bonus_points"`
	BaseScore             int    `json:"base_score"`
	FinalScore            int    `json:"final_score"`
	MembersAttended       int    `json:"members_attended"`
	CoachSessionsAttended int    `json:"coach_sessions_attended"`
	AttendanceRate        Rate   `json:"attendance_rate"`
}

// MemberScore is one member's derived score. AttendanceRate divides the
// member's distinct attended events by the team's declared member count.
type MemberScore struct {
	MemberID       int64    `json:"member_id"`
	TeamID         int64    `json:"team_id"`
	TeamName       string   `json:"team_name"`
	Name           string   `json:"name"`
	DisplayName    string   `json:"display_name"`
	IsLeader       bool     `json:"is_leader"`
	Points         int      `json:"points"`
	EventsAttended int      `json:"events_attended"`
	AttendedEvents []string `json:"attended_events"`
	AttendanceRate Rate     `json:"attendance_rate"`
}

// CoachScore is a coach's derived score across every team they coach.
type CoachScore struct {
	Name             string   `json:"name"`
	Department       string   `json:"department,omitempty"`
	Teams            []string `json:"teams"`
	Points           int      `json:"points"`
	SessionsAttended int      `json:"sessions_attended"`
	EventsAttended   int      `json:"events_attended"`
}

// TeamScores scores every team in the snapshot, in snapshot order.
func TeamScores(s Snapshot) []TeamScore {
	idx := newIndex(s)
	members := activeMembersByTeam(s)
	out := make([]TeamScore, 0, len(s.Teams))
	for _, t := range s.Teams {
		out = append(out, scoreTeam(idx, t, members[t.ID]))
	}
	return out
}

// ScoreTeam scores the team with the given id. The bool is false when the
// snapshot has no such team.
func ScoreTeam(s Snapshot, teamID int64) (TeamScore, bool) {
	idx := newIndex(s)
	t, ok := idx.teams[teamID]
	if !ok {
		return TeamScore{}, false
	}
	return scoreTeam(idx, t, activeMembersByTeam(s)[teamID]), true
}

func scoreTeam(idx *index, t Team, members []Member) TeamScore {
	score := TeamScore{
		TeamID:       t.ID,
		TeamName:     t.Name,
		CoachName:    t.CoachName,
		Department:   t.Department,
		TotalMembers: t.TotalMembers,
	}

	for _, m := range members {
		attended := false
		for _, a := range idx.memberRows[m.ID] {
			score.MemberPoints += a.PointsEarned
			attended = attended || a.Attended
		}
		if attended {
			score.MembersAttended++
		}
	}

	if t.CoachName != "" {
		events := make(map[int64]struct{})
		for _, a := range idx.coachRows[t.CoachName] {
			if !a.Attended {
				continue
			}
			score.CoachPoints += a.PointsEarned
			events[a.EventID] = struct{}{}
		}
		score.CoachSessionsAttended = len(events)
	}

	for _, b := range idx.bonusesByTeam[t.ID] {
		score.BonusPoints += b.Points
	}

	score.BaseScore = score.MemberPoints + score.CoachPoints
	score.FinalScore = score.BaseScore + score.BonusPoints
	score.AttendanceRate = NewRate(score.MembersAttended, t.TotalMembers)
	return score
}

// MemberScores scores the active members of teamID, or of every team when
// teamID is 0. Results are ordered by points descending, then name.
func MemberScores(s Snapshot, teamID int64) []MemberScore {
	idx := newIndex(s)
	var out []MemberScore
	for _, m := range s.Members {
		if !m.IsActive || (teamID != 0 && m.TeamID != teamID) {
			continue
		}
		out = append(out, scoreMember(idx, m))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func scoreMember(idx *index, m Member) MemberScore {
	team := idx.teams[m.TeamID]
	score := MemberScore{
		MemberID:       m.ID,
		TeamID:         m.TeamID,
		TeamName:       team.Name,
		Name:           m.Name,
		DisplayName:    rosterdomain.DisplayName(m.Name),
		IsLeader:       m.IsLeader,
		AttendedEvents: []string{},
	}

	seen := make(map[int64]struct{})
	for _, a := range idx.memberRows[m.ID] {
		score.Points += a.PointsEarned
		if !a.Attended {
			continue
		}
		if _, dup := seen[a.EventID]; dup {
			continue
		}
		seen[a.EventID] = struct{}{}
		if e, ok := idx.events[a.EventID]; ok {
			score.AttendedEvents = append(score.AttendedEvents, e.Name)
		}
	}
	sort.Strings(score.AttendedEvents)
	score.EventsAttended = len(seen)
	score.AttendanceRate = NewRate(score.EventsAttended, team.TotalMembers)
	return score
}

// CoachScores scores every coach known from the coaches table or a team's
// coach name, ordered by points descending, then name.
func CoachScores(s Snapshot) []CoachScore {
	idx := newIndex(s)

	departments := make(map[string]string)
	var names []string
	for _, c := range s.Coaches {
		if !c.IsActive {
			continue
		}
		if _, ok := departments[c.Name]; !ok {
			names = append(names, c.Name)
		}
		departments[c.Name] = c.Department
	}
	for _, t := range s.Teams {
		if t.CoachName == "" {
			continue
		}
		if _, ok := departments[t.CoachName]; !ok {
			departments[t.CoachName] = ""
			names = append(names, t.CoachName)
		}
	}

	out := make([]CoachScore, 0, len(names))
	for _, name := range names {
		score := scoreCoach(idx, name)
		score.Department = departments[name]
		out = append(out, score)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ScoreCoach scores a single coach by name. A name with no teams and no
// attendance scores zero.
func ScoreCoach(s Snapshot, name string) CoachScore {
	idx := newIndex(s)
	score := scoreCoach(idx, name)
	for _, c := range s.Coaches {
		if c.Name == name {
			score.Department = c.Department
		}
	}
	return score
}

func scoreCoach(idx *index, name string) CoachScore {
	score := CoachScore{Name: name, Teams: []string{}}
	for _, t := range idx.teamsByCoach[name] {
		score.Teams = append(score.Teams, t.Name)
	}
	sort.Strings(score.Teams)

	events := make(map[int64]struct{})
	for _, a := range idx.coachRows[name] {
		if !a.Attended {
			continue
		}
		score.Points += a.PointsEarned
		score.SessionsAttended += max(a.Sessions, 1)
		events[a.EventID] = struct{}{}
	}
	score.EventsAttended = len(events)
	return score
}

func activeMembersByTeam(s Snapshot) map[int64][]Member {
	out := make(map[int64][]Member)
	for _, m := range s.Members {
		if m.IsActive {
			out[m.TeamID] = append(out[m.TeamID], m)
		}
	}
	return out
}
