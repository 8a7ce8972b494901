package entities

// Stop reasons reported by the remote model.
const (
	StopReasonToolUse = "tool_use"
	StopReasonEndTurn = "end_turn"
)

// ToolSpec declares one callable tool to the model.
type ToolSpec struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"input_schema"`
}

// InputSchema is the declarative JSON-schema subset the tool catalog uses.
type InputSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]SchemaProperty `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

type SchemaProperty struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// ModelRequest is one round-trip request to the remote model.
type ModelRequest struct {
	System   string
	Tools    []ToolSpec
	Messages []ChatMessage
}

// ModelResponse is the model's answer for one round: content blocks plus a
// stop indicator distinguishing "wants tools" from "done".
type ModelResponse struct {
	Content    []ContentBlock
	StopReason string
}
