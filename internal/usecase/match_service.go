package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-ai/internal/domain/match"
	"github.com/riskibarqy/football-ai/internal/domain/matchstats"
	"github.com/riskibarqy/football-ai/internal/platform/cache"
	"github.com/riskibarqy/football-ai/internal/platform/logging"
)

// MatchRef identifies a match together with the competition season it belongs to.
type MatchRef struct {
	CompetitionID int64 `json:"competition_id" validate:"gt=0"`
	SeasonID      int64 `json:"season_id" validate:"gt=0"`
	MatchID       int64 `json:"match_id" validate:"gt=0"`
}

func (r MatchRef) validate() error {
	if r.CompetitionID <= 0 || r.SeasonID <= 0 || r.MatchID <= 0 {
		return fmt.Errorf("%w: competition_id, season_id and match_id must be positive integers", ErrInvalidInput)
	}
	return nil
}

type MatchService struct {
	repo   match.Repository
	cache  *cache.Store
	logger *logging.Logger
}

func NewMatchService(repo match.Repository, store *cache.Store, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{repo: repo, cache: store, logger: logger}
}

func (s *MatchService) ListCompetitions(ctx context.Context) ([]match.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListCompetitions")
	defer span.End()

	items, err := cache.Load(ctx, s.cache, cache.Key("competitions"), s.repo.ListCompetitions)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	return items, nil
}

func (s *MatchService) ListMatches(ctx context.Context, competitionID, seasonID int64) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	if competitionID <= 0 || seasonID <= 0 {
		return nil, fmt.Errorf("%w: competition_id and season_id must be positive integers", ErrInvalidInput)
	}

	items, err := cache.Load(ctx, s.cache, cache.Key("matches", competitionID, seasonID), func(ctx context.Context) ([]match.Match, error) {
		return s.repo.ListMatches(ctx, competitionID, seasonID)
	})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

// GetMatch returns the details of one match from its competition season.
func (s *MatchService) GetMatch(ctx context.Context, ref MatchRef) (match.Match, error) {
	if err := ref.validate(); err != nil {
		return match.Match{}, err
	}

	items, err := s.ListMatches(ctx, ref.CompetitionID, ref.SeasonID)
	if err != nil {
		return match.Match{}, err
	}
	for _, item := range items {
		if item.MatchID == ref.MatchID {
			return item, nil
		}
	}
	return match.Match{}, fmt.Errorf("%w: match_id=%d in competition_id=%d season_id=%d", ErrNotFound, ref.MatchID, ref.CompetitionID, ref.SeasonID)
}

// Events returns the match's events ordered by time.
func (s *MatchService) Events(ctx context.Context, matchID int64) ([]match.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Events")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match_id must be a positive integer", ErrInvalidInput)
	}
	events, err := cache.Load(ctx, s.cache, cache.Key("events", matchID), func(ctx context.Context) ([]match.Event, error) {
		return s.repo.ListEvents(ctx, matchID)
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *MatchService) GetLineups(ctx context.Context, matchID int64) ([]match.TeamLineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetLineups")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match_id must be a positive integer", ErrInvalidInput)
	}
	lineups, err := cache.Load(ctx, s.cache, cache.Key("lineups", matchID), func(ctx context.Context) ([]match.TeamLineup, error) {
		return s.repo.ListLineups(ctx, matchID)
	})
	if err != nil {
		return nil, fmt.Errorf("list lineups: %w", err)
	}
	return lineups, nil
}

// StartingXI returns, per team, the players who started the match.
func (s *MatchService) StartingXI(ctx context.Context, matchID int64) (map[string][]match.StartingPlayer, error) {
	lineups, err := s.GetLineups(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return match.StartingXI(lineups), nil
}

// TeamNames resolves the home and away team. Match metadata wins; without it the
// first two teams seen in the events are used, and away may be empty.
func (s *MatchService) TeamNames(ctx context.Context, ref MatchRef, events []match.Event) (string, string) {
	if ref.validate() == nil {
		details, err := s.GetMatch(ctx, ref)
		if err == nil && details.HomeTeam != "" {
			return details.HomeTeam, details.AwayTeam
		}
		if err != nil {
			s.logger.WarnContext(ctx, "match details unavailable, deriving teams from events", "match_id", ref.MatchID, "error", err)
		}
	}

	teams := matchstats.Teams(events)
	var home, away string
	if len(teams) > 0 {
		home = teams[0]
	}
	if len(teams) > 1 {
		away = teams[1]
	}
	return home, away
}
