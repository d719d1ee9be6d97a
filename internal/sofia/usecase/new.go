package usecase

import (
	"context"

	"sofia-assistant/internal/gateway"
	"sofia-assistant/internal/knowledge"
	"sofia-assistant/internal/model"
	"sofia-assistant/internal/sofia"
	"sofia-assistant/internal/sofia/catalog"
	"sofia-assistant/internal/sofia/interpreter"
	pkgLog "sofia-assistant/pkg/log"
)

// Generator is the use case's view of the remote generation gateway.
type Generator interface {
	ProcessSimpleQuery(ctx context.Context, req gateway.Request) gateway.Response
	ProcessPremiumGeneration(ctx context.Context, req gateway.Request) gateway.Response
	IsAvailable() bool
}

type implUseCase struct {
	l           pkgLog.Logger
	catalog     *catalog.Catalog
	kb          knowledge.Service
	gateway     Generator
	interpreter interpreter.Interpreter
}

// Ensure implUseCase implements the domain interface.
var _ sofia.UseCase = (*implUseCase)(nil)

// New creates a new assistant dialog UseCase instance.
func New(
	l pkgLog.Logger,
	cat *catalog.Catalog,
	kb knowledge.Service,
	gw Generator,
	it interpreter.Interpreter,
) *implUseCase {
	return &implUseCase{
		l:           l,
		catalog:     cat,
		kb:          kb,
		gateway:     gw,
		interpreter: it,
	}
}

// ContextualActions derives a ranked action list from the dialog context.
func (uc *implUseCase) ContextualActions(dctx model.DialogContext) []model.Action {
	return uc.catalog.ContextualActions(dctx)
}
