package entities

import (
	"bytes"
	"encoding/json"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Content block types on the model wire.
const (
	BlockTypeText       = "text"
	BlockTypeToolUse    = "tool_use"
	BlockTypeToolResult = "tool_result"
)

// ChatMessage is one role-tagged entry in a conversation turn. The backend
// holds no session state: history is passed in by the caller on every request
// and echoed back extended.
type ChatMessage struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// ContentBlock is the content union used by the model wire format: a text
// block, a tool invocation requested by the model, or a tool result fed back.
type ContentBlock struct {
	Type      string         `json:"type"`
	Text      string         `json:"text,omitempty"`
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name,omitempty"`
	Input     map[string]any `json:"input,omitempty"`
	ToolUseID string         `json:"tool_use_id,omitempty"`
	Content   string         `json:"content,omitempty"`
}

// UnmarshalJSON accepts both forms the frontend and the model API produce:
// content as a plain string or as an array of blocks.
func (m *ChatMessage) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Role = raw.Role
	m.Content = nil

	content := bytes.TrimSpace(raw.Content)
	if len(content) == 0 || bytes.Equal(content, []byte("null")) {
		return nil
	}
	if content[0] == '"' {
		var text string
		if err := json.Unmarshal(content, &text); err != nil {
			return err
		}
		m.Content = []ContentBlock{{Type: BlockTypeText, Text: text}}
		return nil
	}
	return json.Unmarshal(content, &m.Content)
}

// NewTextMessage builds a single-text-block message.
func NewTextMessage(role, text string) ChatMessage {
	return ChatMessage{Role: role, Content: []ContentBlock{{Type: BlockTypeText, Text: text}}}
}

// FirstText returns the first text block of the message, or "".
func (m ChatMessage) FirstText() string {
	for _, block := range m.Content {
		if block.Type == BlockTypeText {
			return block.Text
		}
	}
	return ""
}
