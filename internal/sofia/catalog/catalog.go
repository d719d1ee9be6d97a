package catalog

import (
	"fmt"

	"sofia-assistant/internal/model"
)

// Catalog holds the static set of predefined actions. It is built once at
// startup and never mutated, so it is safe for concurrent use without
// locking.
type Catalog struct {
	actions map[string]model.Action
}

// entries is the full static action set.
var entries = []model.Action{
	{
		ID:          ActionOpenVault,
		DisplayText: "Open my vault",
		Icon:        "vault",
		Category:    model.CategoryNavigation,
		Cost:        model.CostFree,
		Payload:     map[string]any{"route": "/vault"},
	},
	{
		ID:          ActionAddDocument,
		DisplayText: "Add a document",
		Icon:        "upload",
		Category:    model.CategoryUIAction,
		Cost:        model.CostFree,
		Payload:     map[string]any{"action": "trigger_upload"},
	},
	{
		ID:          ActionManageGuardians,
		DisplayText: "Manage guardians",
		Icon:        "shield",
		Category:    model.CategoryNavigation,
		Cost:        model.CostFree,
		Payload:     map[string]any{"route": "/guardians"},
	},
	{
		ID:          ActionCreateLegacy,
		DisplayText: "Create my will",
		Icon:        "scroll",
		Category:    model.CategoryNavigation,
		Cost:        model.CostFree,
		Payload:     map[string]any{"route": "/legacy"},
	},
	{
		ID:          ActionSuggestNextStep,
		DisplayText: "What should I do next?",
		Icon:        "compass",
		Category:    model.CategoryAIQuery,
		Cost:        model.CostLowCost,
	},
	{
		ID:          ActionFAQSecurity,
		DisplayText: "How is my data protected?",
		Icon:        "lock",
		Category:    model.CategoryAIQuery,
		Cost:        model.CostLowCost,
	},
	{
		ID:          ActionBackToSofia,
		DisplayText: "Back to Sofia",
		Icon:        "chat",
		Category:    model.CategoryUIAction,
		Cost:        model.CostFree,
		Payload:     map[string]any{"action": "show_sofia"},
	},
	{
		ID:                   ActionRetryPremium,
		DisplayText:          "Try again",
		Icon:                 "refresh",
		Category:             model.CategoryPremiumFeature,
		Cost:                 model.CostPremium,
		Description:          "Retries the premium generation. The attempt is billed at the premium tier.",
		RequiresConfirmation: true,
	},
	{
		ID:                   ActionGenerateLegacyLetter,
		DisplayText:          "Write a personal legacy letter",
		Icon:                 "letter",
		Category:             model.CategoryPremiumFeature,
		Cost:                 model.CostPremium,
		Description:          "Sofia drafts a personal letter to your loved ones based on your profile.",
		RequiresConfirmation: true,
	},
	{
		ID:                   ActionGenerateFamilySummary,
		DisplayText:          "Prepare a family overview",
		Icon:                 "family",
		Category:             model.CategoryPremiumFeature,
		Cost:                 model.CostPremium,
		Description:          "Sofia prepares a financial and document overview for your family.",
		RequiresConfirmation: true,
	},
}

// New builds the catalog from the static entry set. It fails if any entry
// violates the category/cost invariants, so a bad entry cannot ship.
func New() (*Catalog, error) {
	actions := make(map[string]model.Action, len(entries))
	for _, a := range entries {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := actions[a.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate action id %q", a.ID)
		}
		actions[a.ID] = a
	}
	return &Catalog{actions: actions}, nil
}

// Get returns the action with the given id.
func (c *Catalog) Get(id string) (model.Action, bool) {
	a, ok := c.actions[id]
	return a, ok
}

// MustGet returns the action with the given id and panics if it is missing.
// Only used with the well-known ids defined in this package.
func (c *Catalog) MustGet(id string) model.Action {
	a, ok := c.actions[id]
	if !ok {
		panic(fmt.Sprintf("catalog: missing well-known action %q", id))
	}
	return a
}

// ContextualActions derives a ranked list of relevant actions from the
// dialog context. The selection rules run in fixed order, each appending at
// most one action; the result is truncated to 4 entries. Pure function.
func (c *Catalog) ContextualActions(dctx model.DialogContext) []model.Action {
	out := make([]model.Action, 0, maxContextualActions)

	out = append(out, c.actions[ActionOpenVault])

	if dctx.DocumentCount < fewDocumentsThreshold {
		out = append(out, c.actions[ActionAddDocument])
	}

	if dctx.GuardianCount == 0 && dctx.FamilyStatus != model.FamilySingle {
		out = append(out, c.actions[ActionManageGuardians])
	}

	if dctx.CompletionPercentage > completionForLegacyPct {
		out = append(out, c.actions[ActionCreateLegacy])
	}

	out = append(out, c.actions[ActionSuggestNextStep], c.actions[ActionFAQSecurity])

	if len(out) > maxContextualActions {
		out = out[:maxContextualActions]
	}
	return out
}
