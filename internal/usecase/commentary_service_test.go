package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-ai/internal/agent"
	"github.com/riskibarqy/football-ai/internal/domain/match"
	matchmock "github.com/riskibarqy/football-ai/internal/mocks/domain/match"
	"github.com/riskibarqy/football-ai/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

type promptCapturingModel struct {
	reply  string
	err    error
	prompt string
	calls  int
}

func (m *promptCapturingModel) Generate(_ context.Context, req agent.Request, _ func(string)) (agent.Response, error) {
	m.calls++
	if len(req.Messages) > 0 {
		m.prompt = req.Messages[0].Content
	}
	return agent.Response{Text: m.reply}, m.err
}

func newCommentaryFixture(t *testing.T, model agent.Model) *CommentaryService {
	t.Helper()
	repo := matchmock.NewRepository(t)
	repo.On("ListMatches", mock.Anything, int64(43), int64(106)).Return([]match.Match{finalMatch()}, nil).Maybe()
	repo.On("ListLineups", mock.Anything, int64(3869685)).Return([]match.TeamLineup{{
		TeamName: "France",
		Players: []match.LineupPlayer{
			{PlayerName: "Hugo Lloris", JerseyNumber: 1, Positions: []match.LineupPosition{{Position: "Goalkeeper", StartReason: match.StartReasonStarting}}},
		},
	}}, nil).Maybe()

	matches := NewMatchService(repo, cache.NewStore(time.Hour), nil)
	return NewCommentaryService(matches, model, 1024, cache.NewStore(time.Hour), nil)
}

func TestCommentaryService_Comment(t *testing.T) {
	t.Parallel()

	model := &promptCapturingModel{reply: "  Hello everyone, what a final!  "}
	service := newCommentaryFixture(t, model)

	got, err := service.Comment(context.Background(), finalRef, StyleFunny)
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if got != "Hello everyone, what a final!" {
		t.Fatalf("unexpected commentary %q", got)
	}
	for _, want := range []string{"home_team: Argentina", "Hugo Lloris", "playful", "between Argentina and France"} {
		if !strings.Contains(model.prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, model.prompt)
		}
	}

	if _, err := service.Comment(context.Background(), finalRef, StyleFunny); err != nil {
		t.Fatalf("cached comment: %v", err)
	}
	if model.calls != 1 {
		t.Fatalf("expected cached commentary, model calls=%d", model.calls)
	}
}

func TestCommentaryService_EmptyOutputIsNotFound(t *testing.T) {
	t.Parallel()

	service := newCommentaryFixture(t, &promptCapturingModel{reply: "   "})
	if _, err := service.Comment(context.Background(), finalRef, StyleFormal); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCommentaryService_ModelFailures(t *testing.T) {
	t.Parallel()

	service := newCommentaryFixture(t, &promptCapturingModel{err: errors.New("overloaded")})
	if _, err := service.Comment(context.Background(), finalRef, StyleTechnical); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}

	unconfigured := NewCommentaryService(nil, nil, 0, nil, nil)
	if _, err := unconfigured.Comment(context.Background(), finalRef, StyleFormal); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable without model, got %v", err)
	}
}

func TestParseCommentaryStyle(t *testing.T) {
	t.Parallel()

	if got, err := ParseCommentaryStyle(""); err != nil || got != StyleFormal {
		t.Fatalf("expected default formal, got %q err=%v", got, err)
	}
	if got, err := ParseCommentaryStyle("Technical"); err != nil || got != StyleTechnical {
		t.Fatalf("expected technical, got %q err=%v", got, err)
	}
	if _, err := ParseCommentaryStyle("sarcastic"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
