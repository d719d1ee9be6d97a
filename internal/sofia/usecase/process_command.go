package usecase

import (
	"context"
	"strings"

	"sofia-assistant/internal/model"
	"sofia-assistant/internal/sofia"
	"sofia-assistant/internal/sofia/catalog"
)

// ProcessCommand classifies and dispatches one user command. The branch
// order below is the core contract and must be preserved: the branches are
// not mutually exclusive in their string patterns, so reordering changes
// behavior.
//
// It is total: a panic anywhere below is converted into a generic error
// result, never propagated to the caller.
func (uc *implUseCase) ProcessCommand(ctx context.Context, sc model.Scope, cmd sofia.Command) (result sofia.CommandResult) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: recovered from panic: %v", LogPrefixProcess, r)
			result = sofia.CommandResult{
				Type:            sofia.ResultError,
				Cost:            model.CostFree,
				Message:         MsgGenericFailure,
				FollowupActions: uc.catalog.ContextualActions(cmd.Context),
			}
		}
	}()

	uc.l.Infof(ctx, "%s: user=%s command=%q category=%s", LogPrefixProcess, sc.UserID, cmd.ID, cmd.Category)

	switch {
	case cmd.Category == model.CategoryNavigation:
		return uc.handleNavigation(cmd)

	case cmd.Category == model.CategoryUIAction:
		return uc.handleUIAction(cmd)

	case cmd.Category == model.CategoryAIQuery && strings.HasPrefix(cmd.ID, "faq_"):
		return uc.handleKnowledgeLookup(ctx, cmd)

	case cmd.ID == catalog.ActionSuggestNextStep:
		return uc.handleSuggestNextStep(cmd)

	case cmd.Category == model.CategoryPremiumFeature:
		return uc.handlePremium(ctx, cmd)

	default:
		return uc.handleFreeForm(ctx, cmd)
	}
}

// handleNavigation resolves a navigation command against the fixed route
// table. Known routes ask the host to offer a way back to the assistant.
func (uc *implUseCase) handleNavigation(cmd sofia.Command) sofia.CommandResult {
	route, ok := routeTable[cmd.ID]
	if !ok {
		return uc.unknownCommandResult(cmd)
	}

	return sofia.CommandResult{
		Type:             sofia.ResultNavigation,
		Cost:             model.CostFree,
		Route:            route,
		RequiresFollowup: true,
		FollowupActions:  []model.Action{uc.catalog.MustGet(catalog.ActionBackToSofia)},
	}
}

// handleUIAction dispatches the fixed set of UI triggers. All free.
func (uc *implUseCase) handleUIAction(cmd sofia.Command) sofia.CommandResult {
	switch cmd.ID {
	case UITriggerUpload, catalog.ActionAddDocument:
		return sofia.CommandResult{
			Type:        sofia.ResultUIAction,
			Cost:        model.CostFree,
			ActionToken: UITriggerUpload,
			Message:     MsgUploadReady,
			Data: map[string]any{
				"accepted_types": []string{"pdf", "image", "document"},
			},
		}

	case UIShowProgress:
		// The progress panel embeds the ranked next steps so the host can
		// render them without a second round trip.
		steps := uc.nextSteps(cmd.Context)
		return sofia.CommandResult{
			Type:        sofia.ResultUIAction,
			Cost:        model.CostFree,
			ActionToken: UIShowProgress,
			Data: map[string]any{
				"completion_percentage": cmd.Context.CompletionPercentage,
				"document_count":        cmd.Context.DocumentCount,
				"guardian_count":        cmd.Context.GuardianCount,
				"suggestions":           steps,
			},
		}

	case UIShowSofia, catalog.ActionBackToSofia:
		return sofia.CommandResult{
			Type:             sofia.ResultResponse,
			Cost:             model.CostFree,
			Message:          MsgSofiaGreeting,
			RequiresFollowup: true,
			FollowupActions:  uc.catalog.ContextualActions(cmd.Context),
		}

	default:
		return uc.unknownCommandResult(cmd)
	}
}

// handleKnowledgeLookup delegates faq_ commands to the knowledge base.
// A knowledge gap is an error result with recovery actions, not a fault.
func (uc *implUseCase) handleKnowledgeLookup(ctx context.Context, cmd sofia.Command) sofia.CommandResult {
	answer, err := uc.kb.GetAnswer(ctx, cmd.ID, cmd.Context)
	if err != nil {
		return sofia.CommandResult{
			Type:            sofia.ResultError,
			Cost:            model.CostFree,
			Message:         MsgUnknownTopic,
			FollowupActions: uc.catalog.ContextualActions(cmd.Context),
		}
	}

	return sofia.CommandResult{
		Type:             sofia.ResultResponse,
		Cost:             model.CostLowCost,
		Message:          answer.Content,
		RequiresFollowup: len(answer.FollowupActions) > 0,
		FollowupActions:  uc.actionsByID(answer.FollowupActions),
	}
}

// unknownCommandResult is the shared shape for an id missing from the
// relevant lookup table.
func (uc *implUseCase) unknownCommandResult(cmd sofia.Command) sofia.CommandResult {
	return sofia.CommandResult{
		Type:            sofia.ResultError,
		Cost:            model.CostFree,
		Message:         MsgUnknownCommand,
		FollowupActions: uc.catalog.ContextualActions(cmd.Context),
	}
}

// actionsByID resolves catalog ids, silently dropping unknown ones.
func (uc *implUseCase) actionsByID(ids []string) []model.Action {
	out := make([]model.Action, 0, len(ids))
	for _, id := range ids {
		if a, ok := uc.catalog.Get(id); ok {
			out = append(out, a)
		}
	}
	return out
}
