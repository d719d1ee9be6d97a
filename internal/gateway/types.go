package gateway

import (
	"sofia-assistant/internal/model"
)

// RequestKind discriminates what the caller wants generated.
type RequestKind string

const (
	KindSimpleQuery       RequestKind = "simple_query"
	KindKnowledgeLookup   RequestKind = "knowledge_lookup"
	KindPremiumGeneration RequestKind = "premium_generation"
)

// Request is a generation request to the external AI provider.
type Request struct {
	Prompt  string
	Context model.DialogContext
	// History overrides Context.ConversationHistory when set.
	History []model.ConversationMessage
	Kind    RequestKind
}

// Response is the uniform outcome of a generation attempt.
// Success=false implies Text is empty and Err is set; callers must still
// present a user-facing message rather than surface Err raw.
type Response struct {
	Success    bool
	Text       string
	Err        string
	TokensUsed int
	CostTier   model.CostTier
}
