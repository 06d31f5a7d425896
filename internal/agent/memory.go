package agent

import (
	"sync"

	sonic "github.com/bytedance/sonic"
)

const (
	EntryHuman = "human"
	EntryAI    = "ai"
)

// HistoryFileName is the download name of an exported conversation.
const HistoryFileName = "football-ai-chat-history.json"

// Entry is one remembered conversation message.
type Entry struct {
	Type     string         `json:"type"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

// Memory is the conversation buffer replayed to the model on every turn.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(entryType, content string, metadata map[string]any) {
	if metadata == nil {
		metadata = map[string]any{}
	}
	m.mu.Lock()
	m.entries = append(m.entries, Entry{Type: entryType, Content: content, Metadata: metadata})
	m.mu.Unlock()
}

// History returns a copy of the conversation.
func (m *Memory) History() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Memory) HasHistory() bool {
	return m.Len() > 0
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory) Clear() {
	m.mu.Lock()
	m.entries = nil
	m.mu.Unlock()
}

// ExportJSON renders the history as an indented JSON array of
// {type, content, metadata} objects.
func (m *Memory) ExportJSON() ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(m.History(), "", "    ")
}

func (m *Memory) messages() []Message {
	entries := m.History()
	out := make([]Message, 0, len(entries))
	for _, e := range entries {
		role := RoleUser
		if e.Type == EntryAI {
			role = RoleAssistant
		}
		out = append(out, Message{Role: role, Content: e.Content})
	}
	return out
}
