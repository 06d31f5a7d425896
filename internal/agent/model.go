package agent

import "context"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ToolCall is a model's request to run one tool. Input is the raw JSON object the
// model produced.
type ToolCall struct {
	ID    string
	Name  string
	Input []byte
}

// ToolResult answers the ToolCall with the same ID.
type ToolResult struct {
	CallID  string
	Content string
	IsError bool
}

// Message is one entry of the conversation sent to the model. Assistant messages
// may carry tool calls; user messages may carry tool results instead of text.
type Message struct {
	Role        Role
	Content     string
	ToolCalls   []ToolCall
	ToolResults []ToolResult
}

// ToolSpec describes a tool to the model. Properties is a JSON schema properties
// object.
type ToolSpec struct {
	Name        string
	Description string
	Properties  map[string]any
	Required    []string
}

type Request struct {
	System    string
	Messages  []Message
	Tools     []ToolSpec
	MaxTokens int
}

type Response struct {
	Text       string
	ToolCalls  []ToolCall
	Model      string
	StopReason string
}

// Model is a hosted language model. onText, when non-nil, receives text deltas
// while the response streams.
type Model interface {
	Generate(ctx context.Context, req Request, onText func(string)) (Response, error)
}
