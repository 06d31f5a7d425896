package matchstats

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/football-ai/internal/domain/match"
)

// PenaltyMinute is the minute from which goals count as shoot-out penalties.
// The provider feed carries no shoot-out flag this code relies on; the threshold is
// a proxy kept as-is.
const PenaltyMinute = 120

const ownGoalSuffix = " [OG]"

// Goal is a goal credited to Team. For own goals Player carries the " [OG]" marker
// and Team is the side that benefited.
type Goal struct {
	Team      string `json:"team"`
	Player    string `json:"player"`
	Minute    int    `json:"minute"`
	IsOwnGoal bool   `json:"is_own_goal"`
}

// IsPenalty applies the minute threshold.
func (g Goal) IsPenalty() bool {
	return g.Minute >= PenaltyMinute
}

// ScoreSummary is the reconstructed result of a match.
type ScoreSummary struct {
	HomeTeamName        string `json:"home_team_name"`
	HomeTeamOpenPlay    int    `json:"home_team_open_play"`
	HomeTeamPenalty     int    `json:"home_team_penalty"`
	HomeTeamPlayerGoals string `json:"home_team_player_goals"`
	AwayTeamName        string `json:"away_team_name"`
	AwayTeamOpenPlay    int    `json:"away_team_open_play"`
	AwayTeamPenalty     int    `json:"away_team_penalty"`
	AwayTeamPlayerGoals string `json:"away_team_player_goals"`
	Goals               []Goal `json:"goals"`
}

// HasPenalties reports whether either side scored in a shoot-out.
func (s ScoreSummary) HasPenalties() bool {
	return s.HomeTeamPenalty > 0 || s.AwayTeamPenalty > 0
}

// ExtractGoals selects goal-scoring events in event order. Shots ending in a goal
// are credited to the shooter's team; "Own Goal Against" rows are credited to the
// other team, which requires knowing both team names.
func ExtractGoals(events []match.Event, homeTeam, awayTeam string) []Goal {
	goals := make([]Goal, 0, 8)
	for _, e := range events {
		switch {
		case e.Type == match.TypeOwnGoalFor:
			// Mirror row of the conceding side's "Own Goal Against"; counted there.
			continue
		case e.ShotOutcome == match.OutcomeGoal:
			goals = append(goals, Goal{Team: e.Team, Player: e.Player, Minute: e.Minute})
		case e.Type == match.TypeOwnGoalAgainst:
			goals = append(goals, Goal{
				Team:      opponentOf(e.Team, homeTeam, awayTeam),
				Player:    e.Player + ownGoalSuffix,
				Minute:    e.Minute,
				IsOwnGoal: true,
			})
		}
	}
	return goals
}

func opponentOf(team, homeTeam, awayTeam string) string {
	switch {
	case team == homeTeam && homeTeam != "":
		return awayTeam
	case team == awayTeam && awayTeam != "":
		return homeTeam
	default:
		return ""
	}
}

// ReconstructScore derives the score of a match from its events. Unknown or missing
// team names yield zero counts and an empty scorer list for that side.
func ReconstructScore(events []match.Event, homeTeam, awayTeam string) ScoreSummary {
	goals := ExtractGoals(events, homeTeam, awayTeam)

	summary := ScoreSummary{
		HomeTeamName: homeTeam,
		AwayTeamName: awayTeam,
		Goals:        goals,
	}

	var home, away []string
	for _, g := range goals {
		switch {
		case homeTeam != "" && g.Team == homeTeam:
			home = append(home, formatScorer(g))
			if g.IsPenalty() {
				summary.HomeTeamPenalty++
			} else {
				summary.HomeTeamOpenPlay++
			}
		case awayTeam != "" && g.Team == awayTeam:
			away = append(away, formatScorer(g))
			if g.IsPenalty() {
				summary.AwayTeamPenalty++
			} else {
				summary.AwayTeamOpenPlay++
			}
		}
	}
	summary.HomeTeamPlayerGoals = strings.Join(home, ", ")
	summary.AwayTeamPlayerGoals = strings.Join(away, ", ")
	return summary
}

func formatScorer(g Goal) string {
	return fmt.Sprintf("%s (%d')", g.Player, g.Minute)
}
