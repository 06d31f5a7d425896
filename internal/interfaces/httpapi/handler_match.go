package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/football-ai/internal/domain/matchstats"
	"github.com/riskibarqy/football-ai/internal/usecase"
)

type matchesQuery struct {
	CompetitionID int64 `json:"competition_id" validate:"gt=0"`
	SeasonID      int64 `json:"season_id" validate:"gt=0"`
}

type matchIDQuery struct {
	MatchID int64 `json:"match_id" validate:"gt=0"`
}

type playerStatsQuery struct {
	MatchID    int64  `json:"match_id" validate:"gt=0"`
	PlayerName string `json:"player_name" validate:"required"`
}

type matchSummaryDTO struct {
	MatchID int64  `json:"match_id"`
	Summary string `json:"summary"`
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	items, err := h.matchService.ListCompetitions(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list competitions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRecord(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	ref, err := queryMatchRef(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, matchesQuery{CompetitionID: ref.CompetitionID, SeasonID: ref.SeasonID}); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.ListMatches(ctx, ref.CompetitionID, ref.SeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "competition_id", ref.CompetitionID, "season_id", ref.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRecord(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatchSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchSummary")
	defer span.End()

	ref, err := queryMatchRef(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	style, err := usecase.ParseCommentaryStyle(r.URL.Query().Get("style"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.commentaryService.Comment(ctx, ref, style)
	if err != nil {
		h.logger.WarnContext(ctx, "match summary failed", "match_id", ref.MatchID, "style", style, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRecord(ctx, w, http.StatusOK, matchSummaryDTO{MatchID: ref.MatchID, Summary: summary})
}

func (h *Handler) GetMatchScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchScore")
	defer span.End()

	ref, err := queryMatchRef(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.statsService.ScoreSummary(ctx, ref)
	if err != nil {
		h.logger.WarnContext(ctx, "match score failed", "match_id", ref.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRecord(ctx, w, http.StatusOK, summary)
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	matchID, err := queryID(r, "match_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, matchIDQuery{MatchID: matchID}); err != nil {
		writeError(ctx, w, err)
		return
	}
	withOffsides := strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("offsides")), "true")

	stats, err := h.statsService.TeamStats(ctx, matchID, withOffsides)
	if err != nil {
		h.logger.WarnContext(ctx, "team stats failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRecord(ctx, w, http.StatusOK, stats)
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	matchID, err := queryID(r, "match_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := playerStatsQuery{
		MatchID:    matchID,
		PlayerName: strings.TrimSpace(r.URL.Query().Get("player_name")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}
	window, err := parseWindow(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.statsService.PlayerStats(ctx, query.MatchID, query.PlayerName, window)
	if err != nil {
		h.logger.WarnContext(ctx, "player stats failed", "match_id", query.MatchID, "player_name", query.PlayerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRecord(ctx, w, http.StatusOK, stats)
}

func (h *Handler) ListPlayersStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersStats")
	defer span.End()

	matchID, err := queryID(r, "match_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, matchIDQuery{MatchID: matchID}); err != nil {
		writeError(ctx, w, err)
		return
	}
	window, err := parseWindow(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.statsService.AllPlayerStats(ctx, matchID, window)
	if err != nil {
		h.logger.WarnContext(ctx, "players stats failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRecord(ctx, w, http.StatusOK, stats)
}

func (h *Handler) GetLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineups")
	defer span.End()

	matchID, err := queryID(r, "match_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, matchIDQuery{MatchID: matchID}); err != nil {
		writeError(ctx, w, err)
		return
	}

	lineups, err := h.matchService.StartingXI(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "lineups failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRecord(ctx, w, http.StatusOK, lineups)
}

func parseWindow(r *http.Request) (matchstats.TimeWindow, error) {
	window, err := matchstats.ParseTimeWindow(r.URL.Query().Get("time"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return window, nil
}
