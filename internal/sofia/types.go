package sofia

import "sofia-assistant/internal/model"

// ResultType tags the shape of a CommandResult.
type ResultType string

const (
	ResultResponse   ResultType = "response"
	ResultNavigation ResultType = "navigation"
	ResultUIAction   ResultType = "ui_action"
	ResultError      ResultType = "error"
)

// Command is a single user command submitted to the assistant.
// ID carries the structured command id (or the raw utterance for free-form
// input), Category is the caller's hint, Text the original user text.
type Command struct {
	ID       string               `json:"id"`
	Category model.ActionCategory `json:"category"`
	Text     string               `json:"text,omitempty"`
	Context  model.DialogContext  `json:"context"`
	Payload  map[string]any       `json:"payload,omitempty"`
}

// CommandResult is the uniform output envelope of the router. Which fields
// are populated depends on Type:
//
//	navigation — Route
//	ui_action  — ActionToken, Data
//	response   — Message
//	error      — Message
//
// Cost always reflects the tier actually consumed, not the tier the command
// was tagged with.
type CommandResult struct {
	Type             ResultType     `json:"type"`
	Cost             model.CostTier `json:"cost"`
	Route            string         `json:"route,omitempty"`
	ActionToken      string         `json:"action_token,omitempty"`
	Data             map[string]any `json:"data,omitempty"`
	Message          string         `json:"message,omitempty"`
	RequiresFollowup bool           `json:"requires_followup,omitempty"`
	FollowupActions  []model.Action `json:"followup_actions,omitempty"`
}

// Suggestion is one ranked next-step recommendation.
type Suggestion struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	ActionID    string               `json:"action_id"`
	Icon        string               `json:"icon"`
	Category    model.ActionCategory `json:"category"`
	Payload     map[string]any       `json:"payload,omitempty"`
}
