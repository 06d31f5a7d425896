package statsbomb

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/football-ai/internal/domain/match"
	"github.com/riskibarqy/football-ai/internal/usecase"
)

var _ match.Repository = (*Client)(nil)

func (c *Client) ListCompetitions(ctx context.Context) ([]match.Competition, error) {
	var items []competitionItem
	if err := c.getJSON(ctx, "competitions", "/competitions.json", &items); err != nil {
		return nil, fmt.Errorf("fetch competitions: %w", err)
	}

	out := make([]match.Competition, 0, len(items))
	for _, item := range items {
		out = append(out, match.Competition{
			CompetitionID:     item.CompetitionID,
			SeasonID:          item.SeasonID,
			CountryName:       item.CountryName,
			CompetitionName:   item.CompetitionName,
			CompetitionGender: item.CompetitionGender,
			SeasonName:        item.SeasonName,
		})
	}
	return out, nil
}

func (c *Client) ListMatches(ctx context.Context, competitionID, seasonID int64) ([]match.Match, error) {
	if competitionID <= 0 || seasonID <= 0 {
		return nil, fmt.Errorf("%w: competition id and season id must be greater than zero", usecase.ErrInvalidInput)
	}

	var items []matchItem
	path := fmt.Sprintf("/matches/%d/%d.json", competitionID, seasonID)
	if err := c.getJSON(ctx, "matches", path, &items); err != nil {
		return nil, fmt.Errorf("fetch matches competition_id=%d season_id=%d: %w", competitionID, seasonID, err)
	}

	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		out = append(out, mapMatch(item))
	}
	return out, nil
}

func (c *Client) ListEvents(ctx context.Context, matchID int64) ([]match.Event, error) {
	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be greater than zero", usecase.ErrInvalidInput)
	}

	var items []eventItem
	if err := c.getJSON(ctx, "events", fmt.Sprintf("/events/%d.json", matchID), &items); err != nil {
		return nil, fmt.Errorf("fetch events match_id=%d: %w", matchID, err)
	}

	out := make([]match.Event, 0, len(items))
	for _, item := range items {
		out = append(out, mapEvent(matchID, item))
	}
	// The minute counter restarts every period, so stoppage time of one period
	// can carry a later minute than the start of the next. Index is chronological.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[i].Period < out[j].Period
		}
		return out[i].Index < out[j].Index
	})
	return out, nil
}

func (c *Client) ListLineups(ctx context.Context, matchID int64) ([]match.TeamLineup, error) {
	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be greater than zero", usecase.ErrInvalidInput)
	}

	var items []lineupItem
	if err := c.getJSON(ctx, "lineups", fmt.Sprintf("/lineups/%d.json", matchID), &items); err != nil {
		return nil, fmt.Errorf("fetch lineups match_id=%d: %w", matchID, err)
	}

	out := make([]match.TeamLineup, 0, len(items))
	for _, item := range items {
		out = append(out, mapLineup(item))
	}
	return out, nil
}

func mapMatch(item matchItem) match.Match {
	out := match.Match{
		MatchID:          item.MatchID,
		MatchDate:        item.MatchDate,
		KickOff:          item.KickOff,
		CompetitionID:    item.Competition.CompetitionID,
		Competition:      strings.TrimSpace(item.Competition.CountryName + " - " + item.Competition.CompetitionName),
		SeasonID:         item.Season.SeasonID,
		Season:           item.Season.SeasonName,
		HomeTeam:         item.HomeTeam.Name,
		AwayTeam:         item.AwayTeam.Name,
		MatchStatus:      item.MatchStatus,
		MatchWeek:        item.MatchWeek,
		CompetitionStage: item.CompetitionStage.Name,
	}
	if item.Competition.CountryName == "" {
		out.Competition = item.Competition.CompetitionName
	}
	if item.HomeScore != nil {
		out.HomeScore = *item.HomeScore
	}
	if item.AwayScore != nil {
		out.AwayScore = *item.AwayScore
	}
	out.Stadium = refName(item.Stadium)
	out.Referee = refName(item.Referee)
	return out
}

func mapEvent(matchID int64, item eventItem) match.Event {
	out := match.Event{
		ID:      item.ID,
		Index:   item.Index,
		MatchID: matchID,
		Period:  item.Period,
		Minute:  item.Minute,
		Second:  item.Second,
		Type:    item.Type.Name,
		Team:    item.Team.Name,
		Player:  refName(item.Player),
	}
	if item.Pass != nil {
		out.PassOutcome = refName(item.Pass.Outcome)
		out.PassType = refName(item.Pass.Type)
	}
	if item.Shot != nil {
		out.ShotOutcome = refName(item.Shot.Outcome)
		out.ShotType = refName(item.Shot.Type)
	}
	if item.Dribble != nil {
		out.DribbleOutcome = refName(item.Dribble.Outcome)
	}
	if item.FoulCommitted != nil {
		out.FoulCommittedCard = refName(item.FoulCommitted.Card)
	}
	if item.BadBehaviour != nil {
		out.BadBehaviorCard = refName(item.BadBehaviour.Card)
	}
	return out
}

func mapLineup(item lineupItem) match.TeamLineup {
	players := make([]match.LineupPlayer, 0, len(item.Lineup))
	for _, p := range item.Lineup {
		player := match.LineupPlayer{
			PlayerID:     p.PlayerID,
			PlayerName:   p.PlayerName,
			Nickname:     p.Nickname,
			JerseyNumber: p.JerseyNumber,
			Country:      refName(p.Country),
			Positions:    make([]match.LineupPosition, 0, len(p.Positions)),
		}
		for _, pos := range p.Positions {
			player.Positions = append(player.Positions, match.LineupPosition{
				Position:    pos.Position,
				From:        pos.From,
				To:          pos.To,
				StartReason: pos.StartReason,
				EndReason:   pos.EndReason,
			})
		}
		for _, card := range p.Cards {
			player.Cards = append(player.Cards, match.LineupCard{
				Time:     card.Time,
				CardType: card.CardType,
				Reason:   card.Reason,
			})
		}
		players = append(players, player)
	}
	return match.TeamLineup{TeamID: item.TeamID, TeamName: item.TeamName, Players: players}
}

func refName(ref *namedRef) string {
	if ref == nil {
		return ""
	}
	return strings.TrimSpace(ref.Name)
}
