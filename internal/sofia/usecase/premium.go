package usecase

import (
	"context"
	"fmt"

	"sofia-assistant/internal/gateway"
	"sofia-assistant/internal/model"
	"sofia-assistant/internal/sofia"
	"sofia-assistant/internal/sofia/catalog"
)

// handlePremium routes premium content generation through the gateway.
// An unknown premium id is still priced premium: the attempt was categorized
// premium before it could be rejected.
func (uc *implUseCase) handlePremium(ctx context.Context, cmd sofia.Command) sofia.CommandResult {
	template, ok := premiumPrompts[cmd.ID]
	if !ok {
		return sofia.CommandResult{
			Type:            sofia.ResultError,
			Cost:            model.CostPremium,
			Message:         MsgUnknownCommand,
			FollowupActions: uc.catalog.ContextualActions(cmd.Context),
		}
	}

	prompt := buildPremiumPrompt(template, cmd.Context)

	resp := uc.gateway.ProcessPremiumGeneration(ctx, gateway.Request{
		Prompt:  prompt,
		Context: cmd.Context,
		Kind:    gateway.KindPremiumGeneration,
	})

	if !resp.Success {
		message := resp.Err
		if message == "" {
			message = MsgPremiumFallback
		}
		return sofia.CommandResult{
			Type:             sofia.ResultResponse,
			Cost:             model.CostPremium,
			Message:          message,
			RequiresFollowup: true,
			FollowupActions:  []model.Action{uc.catalog.MustGet(catalog.ActionRetryPremium)},
		}
	}

	return sofia.CommandResult{
		Type:             sofia.ResultResponse,
		Cost:             model.CostPremium,
		Message:          resp.Text,
		RequiresFollowup: true,
		FollowupActions:  uc.catalog.ContextualActions(cmd.Context),
	}
}

func buildPremiumPrompt(template string, dctx model.DialogContext) string {
	name := dctx.UserName
	if name == "" {
		name = "the user"
	}
	return fmt.Sprintf(template, name, dctx.FamilyStatus, dctx.DocumentCount, dctx.CompletionPercentage)
}
