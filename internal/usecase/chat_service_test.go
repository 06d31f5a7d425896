package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-ai/internal/agent"
	"github.com/riskibarqy/football-ai/internal/domain/match"
	matchmock "github.com/riskibarqy/football-ai/internal/mocks/domain/match"
	"github.com/riskibarqy/football-ai/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

type fixedIDs struct{ id string }

func (g fixedIDs) NewID() (string, error) { return g.id, nil }

const sessionUUID = "6f1c2e1a-8d4b-4c53-9a4e-0d1f5b2c3a4e"

func newChatFixture(t *testing.T, reply string) (*ChatService, *[]agent.MatchContext) {
	t.Helper()
	repo := matchmock.NewRepository(t)
	repo.On("ListMatches", mock.Anything, int64(43), int64(106)).Return([]match.Match{finalMatch()}, nil).Maybe()
	matches := NewMatchService(repo, cache.NewStore(time.Hour), nil)

	var started []agent.MatchContext
	factory := func(mc agent.MatchContext) (*agent.Agent, error) {
		started = append(started, mc)
		return agent.New(agent.Config{Model: &promptCapturingModel{reply: reply}, Match: mc})
	}
	service := NewChatService(matches, factory, cache.NewStore(2*time.Hour), fixedIDs{id: sessionUUID}, nil)
	return service, &started
}

func TestChatService_StartsSessionAndContinuesIt(t *testing.T) {
	t.Parallel()

	service, started := newChatFixture(t, "Argentina won on penalties.")

	reply, err := service.Chat(context.Background(), ChatInput{Match: finalRef, Query: "Who won?"}, nil)
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply.SessionID != sessionUUID || reply.Answer != "Argentina won on penalties." {
		t.Fatalf("unexpected reply %+v", reply)
	}
	if len(*started) != 1 || (*started)[0].MatchName != "Argentina vs France" {
		t.Fatalf("unexpected agent context %+v", *started)
	}

	if _, err := service.Chat(context.Background(), ChatInput{SessionID: sessionUUID, Query: "And then?"}, nil); err != nil {
		t.Fatalf("continue chat: %v", err)
	}
	if len(*started) != 1 {
		t.Fatalf("expected session reuse, agents started=%d", len(*started))
	}

	raw, err := service.History(context.Background(), sessionUUID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	var entries []agent.Entry
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(entries) != 4 || entries[0].Type != "human" || entries[0].Content != "Who won?" {
		t.Fatalf("unexpected history %+v", entries)
	}

	if err := service.Clear(context.Background(), sessionUUID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := service.History(context.Background(), sessionUUID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected cleared session to be gone, got %v", err)
	}
}

func TestChatService_SessionErrors(t *testing.T) {
	t.Parallel()

	service, _ := newChatFixture(t, "ok")

	if _, err := service.History(context.Background(), "not-a-uuid"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.Chat(context.Background(), ChatInput{SessionID: sessionUUID, Query: "hi"}, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown session, got %v", err)
	}
	if _, err := service.Chat(context.Background(), ChatInput{Match: MatchRef{MatchID: 1}, Query: "hi"}, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for incomplete match, got %v", err)
	}
}

func TestChatService_WithoutModel(t *testing.T) {
	t.Parallel()

	service := NewChatService(nil, nil, cache.NewStore(time.Hour), nil, nil)
	if _, err := service.Chat(context.Background(), ChatInput{Match: finalRef, Query: "hi"}, nil); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
