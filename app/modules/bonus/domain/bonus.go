// Package bonusdomain holds bonus point awards. Awards are append-only:
// corrections are new awards with negative points.
package bonusdomain

import "time"

// Award is one bonus point grant to a team.
type Award struct {
	ID        int64     `json:"id"`
	TeamID    int64     `json:"team_id"`
	TeamName  string    `json:"team_name"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	AwardedBy string    `json:"awarded_by"`
	AwardedAt time.Time `json:"awarded_at"`
}

// Total sums the points of awards.
func Total(awards []Award) int {
	total := 0
	for _, a := range awards {
		total += a.Points
	}
	return total
}
