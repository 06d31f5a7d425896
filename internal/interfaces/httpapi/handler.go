package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-ai/internal/platform/logging"
	"github.com/riskibarqy/football-ai/internal/usecase"
)

type Handler struct {
	matchService      *usecase.MatchService
	statsService      *usecase.StatsService
	commentaryService *usecase.CommentaryService
	chatService       *usecase.ChatService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	statsService *usecase.StatsService,
	commentaryService *usecase.CommentaryService,
	chatService *usecase.ChatService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:      matchService,
		statsService:      statsService,
		commentaryService: commentaryService,
		chatService:       chatService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeRecord(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// queryID reads an integer query parameter. A missing parameter yields zero so
// that validation can report it.
func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return v, nil
}

func queryMatchRef(r *http.Request) (usecase.MatchRef, error) {
	var (
		ref usecase.MatchRef
		err error
	)
	if ref.MatchID, err = queryID(r, "match_id"); err != nil {
		return ref, err
	}
	if ref.CompetitionID, err = queryID(r, "competition_id"); err != nil {
		return ref, err
	}
	if ref.SeasonID, err = queryID(r, "season_id"); err != nil {
		return ref, err
	}
	return ref, nil
}
