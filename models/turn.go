package models

// TurnResult is what one conversation turn produces: either the next prompt,
// or the final summary with its audio handle.
type TurnResult struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"response"`
	AudioID   string `json:"audio,omitempty"`
	Done      bool   `json:"done"`
}
