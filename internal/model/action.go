package model

import "fmt"

// CostTier classifies how expensive it is to resolve a user command.
// Used for UI gating and billing.
type CostTier string

const (
	CostFree    CostTier = "free"
	CostLowCost CostTier = "low_cost"
	CostPremium CostTier = "premium"
)

// ActionCategory classifies what a predefined action does.
type ActionCategory string

const (
	CategoryNavigation     ActionCategory = "navigation"
	CategoryUIAction       ActionCategory = "ui_action"
	CategoryAIQuery        ActionCategory = "ai_query"
	CategoryPremiumFeature ActionCategory = "premium_feature"
)

// Action is a catalog entry describing one predefined action a user can invoke.
// Entries are defined once at process start and never mutated.
type Action struct {
	ID                   string         `json:"id"`
	DisplayText          string         `json:"display_text"`
	Icon                 string         `json:"icon"`
	Category             ActionCategory `json:"category"`
	Cost                 CostTier       `json:"cost"`
	Payload              map[string]any `json:"payload,omitempty"`
	RequiresConfirmation bool           `json:"requires_confirmation,omitempty"`
	Description          string         `json:"description,omitempty"`
}

// Validate enforces the category/cost invariants:
// premium_feature actions are always premium, navigation and ui_action
// actions are always free.
func (a Action) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("action: id is required")
	}
	switch a.Category {
	case CategoryPremiumFeature:
		if a.Cost != CostPremium {
			return fmt.Errorf("action %s: premium_feature must cost premium, got %s", a.ID, a.Cost)
		}
	case CategoryNavigation, CategoryUIAction:
		if a.Cost != CostFree {
			return fmt.Errorf("action %s: %s must cost free, got %s", a.ID, a.Category, a.Cost)
		}
	case CategoryAIQuery:
		// ai_query entries may be free or low_cost depending on how they resolve
	default:
		return fmt.Errorf("action %s: unknown category %q", a.ID, a.Category)
	}
	return nil
}
