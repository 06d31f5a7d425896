package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-ai/internal/agent"
	"github.com/riskibarqy/football-ai/internal/usecase"
)

type chatRequest struct {
	SessionID     string `json:"session_id"`
	CompetitionID int64  `json:"competition_id"`
	SeasonID      int64  `json:"season_id"`
	MatchID       int64  `json:"match_id"`
	Query         string `json:"query" validate:"required"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Chat")
	defer span.End()

	var req chatRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload", usecase.ErrInvalidInput))
		return
	}
	req.Query = strings.TrimSpace(req.Query)
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	reply, err := h.chatService.Chat(ctx, usecase.ChatInput{
		SessionID: strings.TrimSpace(req.SessionID),
		Match: usecase.MatchRef{
			CompetitionID: req.CompetitionID,
			SeasonID:      req.SeasonID,
			MatchID:       req.MatchID,
		},
		Query: req.Query,
	}, nil)
	if err != nil {
		h.logger.WarnContext(ctx, "chat failed", "session_id", req.SessionID, "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRecord(ctx, w, http.StatusOK, reply)
}

func (h *Handler) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChatHistory")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	history, err := h.chatService.History(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "chat history failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeAttachment(ctx, w, agent.HistoryFileName, history)
}

func (h *Handler) ClearChat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearChat")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	if err := h.chatService.Clear(ctx, sessionID); err != nil {
		h.logger.WarnContext(ctx, "clear chat failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
