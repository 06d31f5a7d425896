package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-ai/internal/agent"
	"github.com/riskibarqy/football-ai/internal/platform/cache"
	"github.com/riskibarqy/football-ai/internal/platform/id"
	"github.com/riskibarqy/football-ai/internal/platform/logging"
)

// AgentFactory builds a fresh agent for one conversation about a match.
type AgentFactory func(m agent.MatchContext) (*agent.Agent, error)

type ChatInput struct {
	SessionID string   `json:"session_id"`
	Match     MatchRef `json:"match"`
	Query     string   `json:"query"`
}

type ChatReply struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

// ChatService keeps agent conversations in memory, one per session id. Sessions
// expire after the store's TTL of inactivity.
type ChatService struct {
	matches  *MatchService
	newAgent AgentFactory
	sessions *cache.Store
	ids      id.Generator
	logger   *logging.Logger
}

func NewChatService(matches *MatchService, newAgent AgentFactory, sessions *cache.Store, ids id.Generator, logger *logging.Logger) *ChatService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &ChatService{
		matches:  matches,
		newAgent: newAgent,
		sessions: sessions,
		ids:      ids,
		logger:   logger,
	}
}

// Chat answers query within the session, starting a new session about input.Match
// when no session id is given. progress receives streamed model text.
func (s *ChatService) Chat(ctx context.Context, input ChatInput, progress func(string)) (ChatReply, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatService.Chat")
	defer span.End()

	var (
		sessionID = strings.TrimSpace(input.SessionID)
		conv      *agent.Agent
		err       error
	)
	if sessionID == "" {
		sessionID, conv, err = s.start(ctx, input.Match)
	} else {
		conv, err = s.lookup(ctx, sessionID)
	}
	if err != nil {
		return ChatReply{}, err
	}

	answer := conv.Ask(ctx, input.Query, progress)
	// Re-storing refreshes the session's expiry.
	s.sessions.Set(ctx, sessionID, conv)
	return ChatReply{SessionID: sessionID, Answer: answer}, nil
}

// History exports the session's conversation as JSON.
func (s *ChatService) History(ctx context.Context, sessionID string) ([]byte, error) {
	conv, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	raw, err := conv.Memory().ExportJSON()
	if err != nil {
		return nil, fmt.Errorf("export chat history: %w", err)
	}
	return raw, nil
}

// Clear forgets the conversation and ends the session; later calls with its id
// get ErrNotFound.
func (s *ChatService) Clear(ctx context.Context, sessionID string) error {
	conv, err := s.lookup(ctx, sessionID)
	if err != nil {
		return err
	}
	conv.Memory().Clear()
	s.sessions.Delete(ctx, strings.TrimSpace(sessionID))
	return nil
}

func (s *ChatService) start(ctx context.Context, ref MatchRef) (string, *agent.Agent, error) {
	if err := ref.validate(); err != nil {
		return "", nil, err
	}
	if s.newAgent == nil {
		return "", nil, fmt.Errorf("%w: language model is not configured", ErrDependencyUnavailable)
	}

	mc := agent.MatchContext{
		MatchID:       ref.MatchID,
		CompetitionID: ref.CompetitionID,
		SeasonID:      ref.SeasonID,
	}
	details, err := s.matches.GetMatch(ctx, ref)
	if err != nil {
		return "", nil, err
	}
	mc.MatchName = details.Name()

	conv, err := s.newAgent(mc)
	if err != nil {
		return "", nil, fmt.Errorf("%w: create agent: %v", ErrDependencyUnavailable, err)
	}
	sessionID, err := s.ids.NewID()
	if err != nil {
		return "", nil, err
	}
	s.sessions.Set(ctx, sessionID, conv)
	s.logger.InfoContext(ctx, "chat session started", "session_id", sessionID, "match_id", ref.MatchID)
	return sessionID, conv, nil
}

func (s *ChatService) lookup(ctx context.Context, sessionID string) (*agent.Agent, error) {
	sessionID = strings.TrimSpace(sessionID)
	if !id.Valid(sessionID) {
		return nil, fmt.Errorf("%w: session_id must be a UUID", ErrInvalidInput)
	}
	value, ok := s.sessions.Get(ctx, sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: chat session %s", ErrNotFound, sessionID)
	}
	conv, ok := value.(*agent.Agent)
	if !ok {
		return nil, fmt.Errorf("chat session %s holds %T", sessionID, value)
	}
	return conv, nil
}
