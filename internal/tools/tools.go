package tools

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-ai/internal/agent"
	"github.com/riskibarqy/football-ai/internal/domain/matchstats"
	"github.com/riskibarqy/football-ai/internal/usecase"
)

const (
	MatchDetails       = "get_match_details"
	MatchScoreDetails  = "get_match_score_details"
	MatchStats         = "get_match_stats"
	PlayersStats       = "get_player_stats"
	SinglePlayerStats  = "get_single_player_stats"
	Lineups            = "get_lineups"
	SpecialistComments = "get_specialist_comments"
)

var (
	idProperty     = map[string]any{"type": "integer"}
	windowProperty = map[string]any{
		"type":        "string",
		"enum":        []string{"whole_match", "first_half", "second_half", "overtime"},
		"description": "Part of the match to count. first_half is minute <= 45, second_half is minute > 45 (extra time included), overtime is minute > 90.",
	}
	refProperties = map[string]any{
		"competition_id": idProperty,
		"season_id":      idProperty,
		"match_id":       idProperty,
	}
	refRequired = []string{"competition_id", "season_id", "match_id"}
)

type tool struct {
	spec agent.ToolSpec
	call func(ctx context.Context, input []byte) (string, error)
}

func (t tool) Spec() agent.ToolSpec {
	return t.spec
}

func (t tool) Call(ctx context.Context, input []byte) (string, error) {
	return t.call(ctx, input)
}

// Services are the usecases the tools expose. Commentary is optional.
type Services struct {
	Matches    *usecase.MatchService
	Stats      *usecase.StatsService
	Commentary *usecase.CommentaryService
}

// New returns every tool the services support.
func New(svc Services) []agent.Tool {
	out := []agent.Tool{
		matchDetailsTool(svc.Matches),
		scoreDetailsTool(svc.Stats),
		matchStatsTool(svc.Stats),
		playersStatsTool(svc.Stats),
		singlePlayerStatsTool(svc.Stats),
		lineupsTool(svc.Matches),
	}
	if svc.Commentary != nil {
		out = append(out, specialistCommentsTool(svc.Commentary))
	}
	return out
}

// NewRegistry wraps New in an agent registry.
func NewRegistry(svc Services, observer agent.ToolObserver) (*agent.Registry, error) {
	registry, err := agent.NewRegistry(New(svc)...)
	if err != nil {
		return nil, err
	}
	return registry.WithObserver(observer), nil
}

func matchDetailsTool(matches *usecase.MatchService) tool {
	return tool{
		spec: agent.ToolSpec{
			Name:        MatchDetails,
			Description: "Get the details of a specific match: date, kick-off, competition, stage, stadium, referee, teams and final score.",
			Properties:  refProperties,
			Required:    refRequired,
		},
		call: func(ctx context.Context, input []byte) (string, error) {
			var args matchRefArgs
			if err := decodeArgs(input, &args); err != nil {
				return "", err
			}
			details, err := matches.GetMatch(ctx, args.ref())
			if err != nil {
				return "", err
			}
			return encode(details)
		},
	}
}

func scoreDetailsTool(stats *usecase.StatsService) tool {
	return tool{
		spec: agent.ToolSpec{
			Name:        MatchScoreDetails,
			Description: "Get the summary of goals scored in a match including the goal scorer, minute and team, split into open play and penalty shoot-out goals. Own goals are marked [OG].",
			Properties:  refProperties,
			Required:    refRequired,
		},
		call: func(ctx context.Context, input []byte) (string, error) {
			var args matchRefArgs
			if err := decodeArgs(input, &args); err != nil {
				return "", err
			}
			summary, err := stats.ScoreSummary(ctx, args.ref())
			if err != nil {
				return "", err
			}
			return encode(summary)
		},
	}
}

func matchStatsTool(stats *usecase.StatsService) tool {
	return tool{
		spec: agent.ToolSpec{
			Name:        MatchStats,
			Description: "Get the match statistics per team: shots, passes, fouls committed, corners, yellow cards, red cards and offsides.",
			Properties:  map[string]any{"match_id": idProperty},
			Required:    []string{"match_id"},
		},
		call: func(ctx context.Context, input []byte) (string, error) {
			var args matchArgs
			if err := decodeArgs(input, &args); err != nil {
				return "", err
			}
			teamStats, err := stats.TeamStats(ctx, int64(args.MatchID), true)
			if err != nil {
				return "", err
			}
			return encode(teamStats)
		},
	}
}

func playersStatsTool(stats *usecase.StatsService) tool {
	return tool{
		spec: agent.ToolSpec{
			Name:        PlayersStats,
			Description: "Get the summary statistics for all players of a match: passes, shots, fouls, tackles, interceptions and dribbles.",
			Properties:  map[string]any{"match_id": idProperty, "time": windowProperty},
			Required:    []string{"match_id"},
		},
		call: func(ctx context.Context, input []byte) (string, error) {
			var args windowArgs
			if err := decodeArgs(input, &args); err != nil {
				return "", err
			}
			window, err := parseWindow(args.Time)
			if err != nil {
				return "", err
			}
			all, err := stats.AllPlayerStats(ctx, int64(args.MatchID), window)
			if err != nil {
				return "", err
			}
			return encode(all)
		},
	}
}

func singlePlayerStatsTool(stats *usecase.StatsService) tool {
	return tool{
		spec: agent.ToolSpec{
			Name:        SinglePlayerStats,
			Description: "Get the statistics of one player in a match. The player name must match the event data exactly; unknown players return zeros.",
			Properties: map[string]any{
				"match_id":    idProperty,
				"player_name": map[string]any{"type": "string"},
				"time":        windowProperty,
			},
			Required: []string{"match_id", "player_name"},
		},
		call: func(ctx context.Context, input []byte) (string, error) {
			var args playerArgs
			if err := decodeArgs(input, &args); err != nil {
				return "", err
			}
			window, err := parseWindow(args.Time)
			if err != nil {
				return "", err
			}
			playerStats, err := stats.PlayerStats(ctx, int64(args.MatchID), args.PlayerName, window)
			if err != nil {
				return "", err
			}
			return encode(playerStats)
		},
	}
}

func lineupsTool(matches *usecase.MatchService) tool {
	return tool{
		spec: agent.ToolSpec{
			Name:        Lineups,
			Description: "Get the starting XI of both teams, sorted by jersey number, with each player's starting position.",
			Properties:  map[string]any{"match_id": idProperty},
			Required:    []string{"match_id"},
		},
		call: func(ctx context.Context, input []byte) (string, error) {
			var args matchArgs
			if err := decodeArgs(input, &args); err != nil {
				return "", err
			}
			xi, err := matches.StartingXI(ctx, int64(args.MatchID))
			if err != nil {
				return "", err
			}
			return encode(xi)
		},
	}
}

func specialistCommentsTool(commentary *usecase.CommentaryService) tool {
	properties := map[string]any{
		"style": map[string]any{"type": "string", "enum": []string{"formal", "funny", "technical"}},
	}
	for k, v := range refProperties {
		properties[k] = v
	}
	return tool{
		spec: agent.ToolSpec{
			Name:        SpecialistComments,
			Description: "Provide an overview of the match through the comments of a sports specialist who knows the match details and the starting lineups.",
			Properties:  properties,
			Required:    refRequired,
		},
		call: func(ctx context.Context, input []byte) (string, error) {
			var args commentaryArgs
			if err := decodeArgs(input, &args); err != nil {
				return "", err
			}
			style, err := usecase.ParseCommentaryStyle(args.Style)
			if err != nil {
				return "", err
			}
			return commentary.Comment(ctx, args.ref(), style)
		},
	}
}

func parseWindow(raw string) (matchstats.TimeWindow, error) {
	window, err := matchstats.ParseTimeWindow(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return window, nil
}

func encode(v any) (string, error) {
	out, err := sonic.MarshalString(v)
	if err != nil {
		return "", fmt.Errorf("encode tool result: %w", err)
	}
	return out, nil
}
