package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-ai/internal/agent"
	"github.com/riskibarqy/football-ai/internal/platform/logging"
)

const (
	DefaultModel     = "claude-haiku-4-5-20251001"
	defaultMaxTokens = 600
)

var ErrMissingAPIKey = crerr.New("anthropic api key is not configured")

type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	MaxTokens  int
	MaxRetries int
	Logger     *logging.Logger
}

// Model implements agent.Model over the Messages API, streaming every response.
type Model struct {
	client    sdk.Client
	model     string
	maxTokens int
	logger    *logging.Logger
}

var _ agent.Model = (*Model)(nil)

func New(cfg Config) (*Model, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if cfg.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(cfg.MaxRetries))
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Model{
		client:    sdk.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
		logger:    logger,
	}, nil
}

func (m *Model) Generate(ctx context.Context, req agent.Request, onText func(string)) (agent.Response, error) {
	params := m.params(req)

	stream := m.client.Messages.NewStreaming(ctx, params)
	defer stream.Close()

	message := sdk.Message{}
	for stream.Next() {
		evt := stream.Current()
		if err := message.Accumulate(evt); err != nil {
			return agent.Response{}, crerr.Wrap(err, "accumulate stream event")
		}
		if onText != nil && evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				onText(delta.Delta.AsTextDelta().Text)
			}
		}
	}
	if err := stream.Err(); err != nil {
		m.logger.WarnContext(ctx, "anthropic stream failed", "model", m.model, "error", err)
		return agent.Response{}, crerr.Wrap(err, "stream message")
	}

	return toResponse(message), nil
}

func (m *Model) params(req agent.Request) sdk.MessageNewParams {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = m.maxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(m.model),
		MaxTokens: int64(maxTokens),
		Messages:  toMessageParams(req.Messages),
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if len(req.Tools) > 0 {
		params.Tools = toToolParams(req.Tools)
	}
	return params
}

func toMessageParams(messages []agent.Message) []sdk.MessageParam {
	out := make([]sdk.MessageParam, 0, len(messages))
	for _, msg := range messages {
		blocks := make([]sdk.ContentBlockParamUnion, 0, 1+len(msg.ToolCalls)+len(msg.ToolResults))
		if strings.TrimSpace(msg.Content) != "" {
			blocks = append(blocks, sdk.NewTextBlock(msg.Content))
		}
		for _, call := range msg.ToolCalls {
			input := json.RawMessage(call.Input)
			if len(input) == 0 {
				input = json.RawMessage("{}")
			}
			blocks = append(blocks, sdk.NewToolUseBlock(call.ID, input, call.Name))
		}
		for _, result := range msg.ToolResults {
			blocks = append(blocks, sdk.NewToolResultBlock(result.CallID, result.Content, result.IsError))
		}
		if len(blocks) == 0 {
			continue
		}

		if msg.Role == agent.RoleAssistant {
			out = append(out, sdk.NewAssistantMessage(blocks...))
		} else {
			out = append(out, sdk.NewUserMessage(blocks...))
		}
	}
	return out
}

func toToolParams(specs []agent.ToolSpec) []sdk.ToolUnionParam {
	out := make([]sdk.ToolUnionParam, 0, len(specs))
	for _, spec := range specs {
		out = append(out, sdk.ToolUnionParam{OfTool: &sdk.ToolParam{
			Name:        spec.Name,
			Description: sdk.String(spec.Description),
			InputSchema: sdk.ToolInputSchemaParam{
				Properties: spec.Properties,
				Required:   spec.Required,
			},
		}})
	}
	return out
}

func toResponse(message sdk.Message) agent.Response {
	resp := agent.Response{
		Model:      string(message.Model),
		StopReason: string(message.StopReason),
	}
	var text strings.Builder
	for _, block := range message.Content {
		switch block.Type {
		case "text":
			text.WriteString(block.Text)
		case "tool_use":
			input := []byte(block.Input)
			if len(input) == 0 {
				input = []byte("{}")
			}
			resp.ToolCalls = append(resp.ToolCalls, agent.ToolCall{
				ID:    block.ID,
				Name:  block.Name,
				Input: input,
			})
		}
	}
	resp.Text = text.String()
	return resp
}

// Describe is used in startup logs.
func (m *Model) Describe() string {
	return fmt.Sprintf("anthropic/%s (max_tokens=%d)", m.model, m.maxTokens)
}
