package usecase

import (
	"sofia-assistant/internal/model"
	"sofia-assistant/internal/sofia"
	"sofia-assistant/internal/sofia/catalog"
)

// nextSteps produces the ranked next-step suggestions. Rules run in fixed
// order, each appending at most one entry; the generic suggestion is
// appended only when no other rule fired, so the result always has between
// 1 and 3 entries.
func (uc *implUseCase) nextSteps(dctx model.DialogContext) []sofia.Suggestion {
	var out []sofia.Suggestion

	if dctx.DocumentCount < 3 {
		out = append(out, sofia.Suggestion{
			Title:       "Upload your basic documents",
			Description: "Start with identity papers and insurance policies — the documents your family would need first.",
			ActionID:    catalog.ActionAddDocument,
			Icon:        "upload",
			Category:    model.CategoryUIAction,
			Payload:     map[string]any{"action": UITriggerUpload},
		})
	}

	if dctx.DocumentCount >= 3 && dctx.GuardianCount == 0 {
		out = append(out, sofia.Suggestion{
			Title:       "Add your first guardian",
			Description: "Choose one trusted person who can act for your family when you cannot.",
			ActionID:    catalog.ActionManageGuardians,
			Icon:        "shield",
			Category:    model.CategoryNavigation,
			Payload:     map[string]any{"route": "/guardians"},
		})
	}

	if dctx.CompletionPercentage > 50 {
		out = append(out, sofia.Suggestion{
			Title:       "Create your will",
			Description: "Your foundation is solid — putting your wishes in writing is the natural next step.",
			ActionID:    catalog.ActionCreateLegacy,
			Icon:        "scroll",
			Category:    model.CategoryNavigation,
			Payload:     map[string]any{"route": "/legacy"},
		})
	}

	if len(out) == 0 {
		out = append(out, sofia.Suggestion{
			Title:       "Explore what to improve",
			Description: "Open your progress overview to see where your protection plan can grow.",
			ActionID:    UIShowProgress,
			Icon:        "compass",
			Category:    model.CategoryUIAction,
			Payload:     map[string]any{"action": UIShowProgress},
		})
	}

	return out
}

// handleSuggestNextStep returns the first suggestion as the headline message
// with the full list reflected as follow-up actions. Rule-based, but priced
// low_cost to keep billing uniform with other assistant queries.
func (uc *implUseCase) handleSuggestNextStep(cmd sofia.Command) sofia.CommandResult {
	steps := uc.nextSteps(cmd.Context)

	followups := make([]model.Action, 0, len(steps))
	for _, s := range steps {
		followups = append(followups, suggestionAction(s))
	}

	return sofia.CommandResult{
		Type:             sofia.ResultResponse,
		Cost:             model.CostLowCost,
		Message:          steps[0].Title + ". " + steps[0].Description,
		RequiresFollowup: true,
		FollowupActions:  followups,
	}
}

// suggestionAction projects a suggestion onto the action shape consumed by
// the host. Suggestions only ever point at free navigation/UI targets.
func suggestionAction(s sofia.Suggestion) model.Action {
	return model.Action{
		ID:          s.ActionID,
		DisplayText: s.Title,
		Icon:        s.Icon,
		Category:    s.Category,
		Cost:        model.CostFree,
		Payload:     s.Payload,
		Description: s.Description,
	}
}
