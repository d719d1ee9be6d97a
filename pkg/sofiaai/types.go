package sofiaai

// RequestAction discriminates the provider-side handler for a generation call.
type RequestAction string

const (
	ActionSimpleQuery       RequestAction = "simple_query"
	ActionPremiumGeneration RequestAction = "premium_generation"
)

// Request is the JSON body sent to the AI provider endpoint.
type Request struct {
	Action              RequestAction    `json:"action"`
	Prompt              string           `json:"prompt"`
	Context             UserContext      `json:"context"`
	ConversationHistory []HistoryMessage `json:"conversation_history,omitempty"`
}

// UserContext is the provider-facing projection of the dialog context.
// Only fields useful for prompt grounding are sent.
type UserContext struct {
	UserID               string `json:"user_id"`
	UserName             string `json:"user_name,omitempty"`
	DocumentCount        int    `json:"document_count"`
	GuardianCount        int    `json:"guardian_count"`
	CompletionPercentage int    `json:"completion_percentage"`
	FamilyStatus         string `json:"family_status,omitempty"`
	Language             string `json:"language,omitempty"`
}

// HistoryMessage is a prior conversation turn included for prompt context.
type HistoryMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Response is the JSON body returned by the AI provider on success.
type Response struct {
	Response   string `json:"response"`
	TokensUsed int    `json:"tokens_used,omitempty"`
}
