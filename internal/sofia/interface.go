package sofia

import (
	"context"

	"sofia-assistant/internal/model"
)

// UseCase is the business logic interface for the assistant dialog domain.
type UseCase interface {
	// ProcessCommand classifies and dispatches a single user command.
	// It is total: every input, including panicking collaborators, resolves
	// to a CommandResult; failures surface as error-typed results, never
	// as returned errors.
	ProcessCommand(ctx context.Context, sc model.Scope, cmd Command) CommandResult

	// ContextualActions derives a short ranked list of relevant actions
	// from the dialog context. Pure; between 1 and 4 entries.
	ContextualActions(dctx model.DialogContext) []model.Action
}
