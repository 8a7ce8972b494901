package entities

// ActionResult is the synthesized payload returned by one executor
// operation. No result is persisted; it exists for the current call only.
type ActionResult struct {
	Success     bool           `json:"success"`
	Action      string         `json:"action,omitempty"`
	ReferenceID string         `json:"reference_id,omitempty"`
	Message     string         `json:"message"`
	Details     map[string]any `json:"details,omitempty"`
}

// ToolInvocation records one executed tool call within a chat turn.
type ToolInvocation struct {
	Tool   string         `json:"tool"`
	Input  map[string]any `json:"input"`
	Result ActionResult   `json:"result"`
}
