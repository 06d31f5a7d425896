package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-ai/internal/domain/match"
	"github.com/riskibarqy/football-ai/internal/domain/matchstats"
	"github.com/riskibarqy/football-ai/internal/platform/cache"
	"github.com/riskibarqy/football-ai/internal/platform/logging"
	"github.com/sourcegraph/conc/panics"
)

const defaultStatsWorkers = 8

// StatsService serves the match aggregates, caching each by its argument tuple.
type StatsService struct {
	matches *MatchService
	cache   *cache.Store
	logger  *logging.Logger
	workers int
	compute func(events []match.Event, player string, window matchstats.TimeWindow) matchstats.Result[matchstats.PlayerStats]
}

func NewStatsService(matches *MatchService, store *cache.Store, workers int, logger *logging.Logger) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultStatsWorkers
	}
	return &StatsService{
		matches: matches,
		cache:   store,
		logger:  logger,
		workers: workers,
		compute: matchstats.ComputePlayerStats,
	}
}

func (s *StatsService) ScoreSummary(ctx context.Context, ref MatchRef) (matchstats.ScoreSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ScoreSummary")
	defer span.End()

	if err := ref.validate(); err != nil {
		return matchstats.ScoreSummary{}, err
	}

	key := cache.Key("score", ref.CompetitionID, ref.SeasonID, ref.MatchID)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (matchstats.ScoreSummary, error) {
		events, err := s.matches.Events(ctx, ref.MatchID)
		if err != nil {
			return matchstats.ScoreSummary{}, err
		}
		home, away := s.matches.TeamNames(ctx, ref, events)
		return matchstats.ReconstructScore(events, home, away), nil
	})
}

// PlayerStats returns one player's counts. A player without events, or a match
// without events, yields zero counts rather than an error.
func (s *StatsService) PlayerStats(ctx context.Context, matchID int64, player string, window matchstats.TimeWindow) (matchstats.PlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerStats")
	defer span.End()

	player = strings.TrimSpace(player)
	if player == "" {
		return matchstats.PlayerStats{}, fmt.Errorf("%w: player_name is required", ErrInvalidInput)
	}
	if window == "" {
		window = matchstats.WholeMatch
	}

	key := cache.Key("player_stats", matchID, player, window)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (matchstats.PlayerStats, error) {
		events, err := s.matches.Events(ctx, matchID)
		if err != nil {
			return matchstats.PlayerStats{}, err
		}
		result := s.compute(events, player, window)
		if !result.OK() {
			s.logger.DebugContext(ctx, "player stats defaulted to zero", "match_id", matchID, "player", player, "window", window, "reason", result.NoData)
		}
		return result.OrZero(), nil
	})
}

// AllPlayerStats computes stats for every player seen in the match. Players are
// processed on a worker pool; one player's failure yields zero counts for that
// player only.
func (s *StatsService) AllPlayerStats(ctx context.Context, matchID int64, window matchstats.TimeWindow) (map[string]matchstats.PlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.AllPlayerStats")
	defer span.End()

	if window == "" {
		window = matchstats.WholeMatch
	}

	key := cache.Key("players_stats", matchID, window)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (map[string]matchstats.PlayerStats, error) {
		events, err := s.matches.Events(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return s.computeAll(ctx, matchID, events, window)
	})
}

func (s *StatsService) computeAll(ctx context.Context, matchID int64, events []match.Event, window matchstats.TimeWindow) (map[string]matchstats.PlayerStats, error) {
	players := matchstats.PlayerNames(events)
	out := make(map[string]matchstats.PlayerStats, len(players))
	if len(players) == 0 {
		return out, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(players)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		workers sync.WaitGroup
	)
	for _, player := range players {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			var stats matchstats.PlayerStats
			var catcher panics.Catcher
			catcher.Try(func() {
				stats = s.compute(events, player, window).OrZero()
			})
			if recovered := catcher.Recovered(); recovered != nil {
				s.logger.ErrorContext(ctx, "player stats computation failed", "match_id", matchID, "player", player, "error", recovered.AsError())
				stats = matchstats.PlayerStats{}
			}

			mu.Lock()
			out[player] = stats
			mu.Unlock()
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()
	return out, nil
}

// TeamStats applies the default stat configuration, optionally with offsides.
func (s *StatsService) TeamStats(ctx context.Context, matchID int64, withOffsides bool) (matchstats.TeamStatsMap, error) {
	return s.TeamStatsWith(ctx, matchID, fmt.Sprintf("default:%t", withOffsides), matchstats.DefaultStatConfig(withOffsides))
}

// TeamStatsWith applies cfg. configKey must identify cfg for caching.
func (s *StatsService) TeamStatsWith(ctx context.Context, matchID int64, configKey string, cfg matchstats.StatConfig) (matchstats.TeamStatsMap, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamStats")
	defer span.End()

	key := cache.Key("team_stats", matchID, configKey)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (matchstats.TeamStatsMap, error) {
		events, err := s.matches.Events(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return matchstats.ComputeTeamStats(events, cfg), nil
	})
}
