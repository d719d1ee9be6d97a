package usecase

import (
	"context"

	"sofia-assistant/internal/gateway"
	"sofia-assistant/internal/model"
	"sofia-assistant/internal/sofia"
	"sofia-assistant/internal/sofia/interpreter"
)

// handleFreeForm is the last dispatch branch: best-effort classification of
// raw user text. Keyword-resolved branches are free; only the security FAQ
// and the one-shot AI escalation are low_cost.
func (uc *implUseCase) handleFreeForm(ctx context.Context, cmd sofia.Command) sofia.CommandResult {
	text := cmd.Text
	if text == "" {
		text = cmd.ID
	}

	switch uc.interpreter.Classify(text) {
	case interpreter.IntentUpload:
		return uc.handleUIAction(withID(cmd, UITriggerUpload))

	case interpreter.IntentVault:
		return uc.handleNavigation(withID(cmd, "navigate_vault"))

	case interpreter.IntentGuardians:
		return uc.handleNavigation(withID(cmd, "navigate_guardians"))

	case interpreter.IntentLegacy:
		return uc.handleNavigation(withID(cmd, "navigate_legacy"))

	case interpreter.IntentHelp:
		return uc.handleSuggestNextStep(cmd)

	case interpreter.IntentSecurity:
		return uc.handleKnowledgeLookup(ctx, withID(cmd, "faq_security"))

	case interpreter.IntentQuestion:
		if result, ok := uc.escalateQuestion(ctx, text, cmd.Context); ok {
			return result
		}
		// A failed escalation is indistinguishable from "no match found";
		// the conflation is intentional and load-bearing for callers.
		return uc.fallbackResult(cmd)

	default:
		return uc.fallbackResult(cmd)
	}
}

// escalateQuestion makes the single AI-interpretation attempt for open
// questions. Anything abnormal, including a panicking collaborator, is
// swallowed here with a log line so the caller falls through to the generic
// fallback.
func (uc *implUseCase) escalateQuestion(ctx context.Context, text string, dctx model.DialogContext) (result sofia.CommandResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Warnf(ctx, "%s: AI escalation failed: %v", LogPrefixProcess, r)
			ok = false
		}
	}()

	resp := uc.gateway.ProcessSimpleQuery(ctx, gateway.Request{
		Prompt:  text,
		Context: dctx,
		Kind:    gateway.KindSimpleQuery,
	})
	if !resp.Success || resp.Text == "" {
		return sofia.CommandResult{}, false
	}

	return sofia.CommandResult{
		Type:             sofia.ResultResponse,
		Cost:             model.CostLowCost,
		Message:          resp.Text,
		RequiresFollowup: true,
		FollowupActions:  uc.catalog.ContextualActions(dctx),
	}, true
}

// fallbackResult is the terminal free-form branch.
func (uc *implUseCase) fallbackResult(cmd sofia.Command) sofia.CommandResult {
	return sofia.CommandResult{
		Type:             sofia.ResultResponse,
		Cost:             model.CostFree,
		Message:          MsgNotSure,
		RequiresFollowup: true,
		FollowupActions:  uc.catalog.ContextualActions(cmd.Context),
	}
}

func withID(cmd sofia.Command, id string) sofia.Command {
	cmd.ID = id
	return cmd
}
