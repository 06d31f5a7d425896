package matchstats

import (
	"github.com/riskibarqy/football-ai/internal/domain/match"
)

// PlayerStats is the fixed set of counting statistics for one player.
type PlayerStats struct {
	PassesCompleted    int `json:"passes_completed"`
	PassesAttempted    int `json:"passes_attempted"`
	Shots              int `json:"shots"`
	ShotsOnTarget      int `json:"shots_on_target"`
	FoulsCommitted     int `json:"fouls_committed"`
	FoulsWon           int `json:"fouls_won"`
	Tackles            int `json:"tackles"`
	Interceptions      int `json:"interceptions"`
	DribblesSuccessful int `json:"dribbles_successful"`
	DribblesAttempted  int `json:"dribbles_attempted"`
}

func (s *PlayerStats) add(e match.Event) {
	switch e.Type {
	case match.TypePass:
		s.PassesAttempted++
		if e.PassOutcome == "" {
			s.PassesCompleted++
		}
	case match.TypeShot:
		s.Shots++
		if e.ShotOutcome == match.OutcomeOnTarget {
			s.ShotsOnTarget++
		}
	case match.TypeFoulCommitted:
		s.FoulsCommitted++
	case match.TypeFoulWon:
		s.FoulsWon++
	case match.TypeTackle:
		s.Tackles++
	case match.TypeInterception:
		s.Interceptions++
	case match.TypeDribble:
		s.DribblesAttempted++
		if e.DribbleOutcome == match.OutcomeComplete {
			s.DribblesSuccessful++
		}
	}
}

// ComputePlayerStats counts one player's events inside the window. It reports
// NoMatchEvents when the window holds no events at all and PlayerNotFound when the
// player has none of them.
func ComputePlayerStats(events []match.Event, player string, window TimeWindow) Result[PlayerStats] {
	scoped := window.Filter(events)
	if len(scoped) == 0 {
		return noData[PlayerStats](NoMatchEvents)
	}

	var stats PlayerStats
	seen := false
	for _, e := range scoped {
		if e.Player == "" || e.Player != player {
			continue
		}
		seen = true
		stats.add(e)
	}
	if !seen {
		return noData[PlayerStats](PlayerNotFound)
	}
	return found(stats)
}

// PlayerNames lists the distinct non-empty player names in event order.
func PlayerNames(events []match.Event) []string {
	seen := make(map[string]struct{}, 64)
	out := make([]string, 0, 64)
	for _, e := range events {
		if e.Player == "" {
			continue
		}
		if _, ok := seen[e.Player]; ok {
			continue
		}
		seen[e.Player] = struct{}{}
		out = append(out, e.Player)
	}
	return out
}
