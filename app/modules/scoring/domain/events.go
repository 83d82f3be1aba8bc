package scoringdomain

import (
	"sort"
	"time"
)

// EventStats summarizes attendance at one event.
type EventStats struct {
	EventID           int64     `json:"event_id"`
	Name              string    `json:"name"`
	EventType         string    `json:"event_type"`
	EventDate         time.Time `json:"event_date"`
	IsActive          bool      `json:"is_active"`
	MembersAttended   int       `json:"members_attended"`
	CoachesAttended   int       `json:"coaches_attended"`
	MemberPoints      int       `json:"member_points"`
	CoachPoints       int       `json:"coach_points"`
	TotalPoints       int       `json:"total_points"`
	TeamsParticipated int       `json:"teams_participated"`
	ParticipationRate Rate      `json:"participation_rate"`
}

// EventAnalytics summarizes every event, ordered by date, then id.
// ParticipationRate divides members attended by active members overall.
func EventAnalytics(s Snapshot) []EventStats {
	idx := newIndex(s)
	activeMembers := 0
	for _, m := range s.Members {
		if m.IsActive {
			activeMembers++
		}
	}

	byEvent := make(map[int64][]Attendance)
	for _, a := range s.Attendance {
		byEvent[a.EventID] = append(byEvent[a.EventID], a)
	}

	out := make([]EventStats, 0, len(s.Events))
	for _, e := range s.Events {
		out = append(out, eventStats(idx, e, byEvent[e.ID], activeMembers))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].EventDate.Equal(out[j].EventDate) {
			return out[i].EventDate.Before(out[j].EventDate)
		}
		return out[i].EventID < out[j].EventID
	})
	return out
}

// StatsForEvent summarizes a single event. The bool is false when the
// snapshot has no such event.
func StatsForEvent(s Snapshot, eventID int64) (EventStats, bool) {
	for _, st := range EventAnalytics(s) {
		if st.EventID == eventID {
			return st, true
		}
	}
	return EventStats{}, false
}

func eventStats(idx *index, e Event, rows []Attendance, activeMembers int) EventStats {
	st := EventStats{
		EventID:   e.ID,
		Name:      e.Name,
		EventType: e.EventType,
		EventDate: e.EventDate,
		IsActive:  e.IsActive,
	}

	members := make(map[int64]struct{})
	coaches := make(map[string]struct{})
	teams := make(map[int64]struct{})
	for _, a := range rows {
		if !a.Attended {
			continue
		}
		switch {
		case a.isMemberRow():
			st.MemberPoints += a.PointsEarned
			members[*a.MemberID] = struct{}{}
			if m, ok := idx.members[*a.MemberID]; ok {
				teams[m.TeamID] = struct{}{}
			}
		case a.isCoachRow():
			st.CoachPoints += a.PointsEarned
			coaches[*a.CoachName] = struct{}{}
			for _, t := range idx.teamsByCoach[*a.CoachName] {
				teams[t.ID] = struct{}{}
			}
		}
	}

	st.MembersAttended = len(members)
	st.CoachesAttended = len(coaches)
	st.TeamsParticipated = len(teams)
	st.TotalPoints = st.MemberPoints + st.CoachPoints
	st.ParticipationRate = NewRate(st.MembersAttended, activeMembers)
	return st
}
