package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/football-ai/internal/platform/logging"
)

const (
	EmptyQueryReply     = "Please provide a query to ask the agent."
	IterationLimitReply = "Agent stopped due to iteration limit."
	errorReplyPrefix    = "An error occurred: "

	defaultMaxIterations = 10
)

// Observer receives per-turn measurements; the metrics service implements it.
type Observer interface {
	AgentTurn(iterations int, err error)
	LLMRequest(elapsed time.Duration)
}

type Config struct {
	Model         Model
	Tools         *Registry
	Match         MatchContext
	MaxIterations int
	MaxTokens     int
	Logger        *logging.Logger
	Observer      Observer
}

// Agent answers questions about one match, calling tools as the model requests.
// Turns are serialized; memory persists across turns.
type Agent struct {
	mu            sync.Mutex
	model         Model
	tools         *Registry
	match         MatchContext
	system        string
	maxIterations int
	maxTokens     int
	memory        *Memory
	logger        *logging.Logger
	observer      Observer
}

func New(cfg Config) (*Agent, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("agent model is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	maxIterations := cfg.MaxIterations
	if maxIterations <= 0 {
		maxIterations = defaultMaxIterations
	}

	system, err := RenderSystemPrompt(cfg.Match, cfg.Tools.Names())
	if err != nil {
		return nil, fmt.Errorf("render system prompt: %w", err)
	}

	return &Agent{
		model:         cfg.Model,
		tools:         cfg.Tools,
		match:         cfg.Match,
		system:        system,
		maxIterations: maxIterations,
		maxTokens:     cfg.MaxTokens,
		memory:        NewMemory(),
		logger:        logger,
		observer:      cfg.Observer,
	}, nil
}

func (a *Agent) Match() MatchContext {
	return a.match
}

func (a *Agent) Memory() *Memory {
	return a.memory
}

// Ask runs one conversation turn. It never fails: errors come back as a readable
// reply so the conversation can continue.
func (a *Agent) Ask(ctx context.Context, query string, progress func(string)) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return EmptyQueryReply
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	answer, meta, err := a.run(ctx, query, progress)
	if a.observer != nil {
		a.observer.AgentTurn(meta.iterations, err)
	}
	if err != nil {
		a.logger.WarnContext(ctx, "agent turn failed", "match_id", a.match.MatchID, "iterations", meta.iterations, "error", err)
		return errorReplyPrefix + err.Error()
	}

	a.memory.Append(EntryHuman, query, nil)
	a.memory.Append(EntryAI, answer, map[string]any{
		"model":       meta.model,
		"stop_reason": meta.stopReason,
		"iterations":  meta.iterations,
	})
	return answer
}

type turnMeta struct {
	iterations int
	model      string
	stopReason string
}

func (a *Agent) run(ctx context.Context, query string, progress func(string)) (string, turnMeta, error) {
	var meta turnMeta
	messages := append(a.memory.messages(), Message{Role: RoleUser, Content: query})

	for meta.iterations < a.maxIterations {
		if err := ctx.Err(); err != nil {
			return "", meta, err
		}
		meta.iterations++

		started := time.Now()
		resp, err := a.model.Generate(ctx, Request{
			System:    a.system,
			Messages:  messages,
			Tools:     a.tools.Specs(),
			MaxTokens: a.maxTokens,
		}, progress)
		if a.observer != nil {
			a.observer.LLMRequest(time.Since(started))
		}
		if err != nil {
			return "", meta, err
		}
		meta.model = resp.Model
		meta.stopReason = resp.StopReason

		if len(resp.ToolCalls) == 0 {
			return strings.TrimSpace(resp.Text), meta, nil
		}

		messages = append(messages, Message{Role: RoleAssistant, Content: resp.Text, ToolCalls: resp.ToolCalls})
		results := make([]ToolResult, 0, len(resp.ToolCalls))
		for _, call := range resp.ToolCalls {
			result := a.tools.Dispatch(ctx, call)
			a.logger.DebugContext(ctx, "tool call", "tool", call.Name, "is_error", result.IsError)
			results = append(results, result)
		}
		messages = append(messages, Message{Role: RoleUser, ToolResults: results})
	}

	meta.stopReason = "iteration_limit"
	return IterationLimitReply, meta, nil
}
