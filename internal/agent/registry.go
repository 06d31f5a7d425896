package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/panics"
)

// Tool is a JSON-in/text-out function the model may call.
type Tool interface {
	Spec() ToolSpec
	Call(ctx context.Context, input []byte) (string, error)
}

// ToolObserver is told about every dispatched call.
type ToolObserver interface {
	ToolCall(tool string, err error)
}

type Registry struct {
	tools    []Tool
	byName   map[string]Tool
	observer ToolObserver
}

func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{
		tools:  make([]Tool, 0, len(tools)),
		byName: make(map[string]Tool, len(tools)),
	}
	for _, tool := range tools {
		if tool == nil {
			continue
		}
		name := strings.TrimSpace(tool.Spec().Name)
		if name == "" {
			return nil, fmt.Errorf("tool name is required")
		}
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("duplicate tool %q", name)
		}
		r.byName[name] = tool
		r.tools = append(r.tools, tool)
	}
	return r, nil
}

// WithObserver sets the observer and returns r.
func (r *Registry) WithObserver(observer ToolObserver) *Registry {
	r.observer = observer
	return r
}

func (r *Registry) Specs() []ToolSpec {
	if r == nil {
		return nil
	}
	out := make([]ToolSpec, 0, len(r.tools))
	for _, tool := range r.tools {
		out = append(out, tool.Spec())
	}
	return out
}

// Names returns the tool names sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) Lookup(name string) (Tool, bool) {
	if r == nil {
		return nil, false
	}
	tool, ok := r.byName[name]
	return tool, ok
}

// Dispatch runs call and converts every failure, panics included, into an error
// result the model can read.
func (r *Registry) Dispatch(ctx context.Context, call ToolCall) ToolResult {
	tool, ok := r.Lookup(call.Name)
	if !ok {
		err := fmt.Errorf("unknown tool %q; available tools: %s", call.Name, strings.Join(r.Names(), ", "))
		r.observe(call.Name, err)
		return ToolResult{CallID: call.ID, Content: "error: " + err.Error(), IsError: true}
	}

	var (
		content string
		err     error
	)
	var catcher panics.Catcher
	catcher.Try(func() {
		content, err = tool.Call(ctx, call.Input)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		err = fmt.Errorf("tool %s panicked: %v", call.Name, recovered.Value)
	}
	r.observe(call.Name, err)
	if err != nil {
		return ToolResult{CallID: call.ID, Content: "error: " + err.Error(), IsError: true}
	}
	return ToolResult{CallID: call.ID, Content: content}
}

func (r *Registry) observe(name string, err error) {
	if r != nil && r.observer != nil {
		r.observer.ToolCall(name, err)
	}
}
