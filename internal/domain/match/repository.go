package match

import "context"

// Repository is the match event source: competitions, fixtures, events and lineups
// as supplied by the third-party statistics provider.
type Repository interface {
	ListCompetitions(ctx context.Context) ([]Competition, error)
	ListMatches(ctx context.Context, competitionID, seasonID int64) ([]Match, error)
	ListEvents(ctx context.Context, matchID int64) ([]Event, error)
	ListLineups(ctx context.Context, matchID int64) ([]TeamLineup, error)
}
