package scoringdomain

import "sort"

// Rank orders scores by final score descending, then team name, and assigns
// standard competition ranks: tied scores share a rank and the next rank
// skips ahead (1, 2, 2, 4). The input slice is not modified.
func Rank(scores []TeamScore) []TeamScore {
	out := make([]TeamScore, len(scores))
	copy(out, scores)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FinalScore != out[j].FinalScore {
			return out[i].FinalScore > out[j].FinalScore
		}
		return out[i].TeamName < out[j].TeamName
	})
	for i := range out {
		if i > 0 && out[i].FinalScore == out[i-1].FinalScore {
			out[i].Rank = out[i-1].Rank
			continue
		}
		out[i].Rank = i + 1
	}
	return out
}

// Leaderboard ranks the active teams of s. A positive limit truncates the
// result after ranking.
func Leaderboard(s Snapshot, limit int) []TeamScore {
	var active []TeamScore
	for _, score := range TeamScores(s) {
		if isActiveTeam(s, score.TeamID) {
			active = append(active, score)
		}
	}
	ranked := Rank(active)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func isActiveTeam(s Snapshot, id int64) bool {
	for _, t := range s.Teams {
		if t.ID == id {
			return t.IsActive
		}
	}
	return false
}
