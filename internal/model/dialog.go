package model

import "time"

// FamilyStatus describes the user's family situation, used to tailor
// suggestions.
type FamilyStatus string

const (
	FamilySingle     FamilyStatus = "single"
	FamilyPartner    FamilyStatus = "partner"
	FamilyFamily     FamilyStatus = "family"
	FamilyParentCare FamilyStatus = "parent_care"
	FamilyBusiness   FamilyStatus = "business"
)

// Message roles in a conversation.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationMessage is a single prior exchange in a dialog.
type ConversationMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// DialogContext is a snapshot of the user's current state, passed by value
// into every routing decision. The router treats it as read-only; it is
// produced and owned by the calling layer.
type DialogContext struct {
	UserID               string                `json:"user_id"`
	UserName             string                `json:"user_name,omitempty"`
	DocumentCount        int                   `json:"document_count"`
	GuardianCount        int                   `json:"guardian_count"`
	CompletionPercentage int                   `json:"completion_percentage"` // 0-100
	RecentActivity       []string              `json:"recent_activity,omitempty"`
	FamilyStatus         FamilyStatus          `json:"family_status"`
	Language             string                `json:"language"`
	CurrentPage          string                `json:"current_page,omitempty"`
	LastInteractionAt    time.Time             `json:"last_interaction_at,omitempty"`
	ConversationHistory  []ConversationMessage `json:"conversation_history,omitempty"`
}

// RecentHistory returns the last n conversation messages, oldest first.
// Used to bound prompt size before calling the AI provider.
func (d DialogContext) RecentHistory(n int) []ConversationMessage {
	if n <= 0 || len(d.ConversationHistory) <= n {
		return d.ConversationHistory
	}
	return d.ConversationHistory[len(d.ConversationHistory)-n:]
}
