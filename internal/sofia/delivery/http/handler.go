package http

import (
	"github.com/gin-gonic/gin"

	"sofia-assistant/internal/model"
	"sofia-assistant/internal/sofia"
	pkgLog "sofia-assistant/pkg/log"
	pkgResponse "sofia-assistant/pkg/response"
)

type handler struct {
	l        pkgLog.Logger
	uc       sofia.UseCase
	sessions SessionStore
}

// HandleCommand is the Gin handler for POST /api/v1/sofia/command.
// @Summary Process an assistant command
// @Description Classifies a structured or free-text command and returns the uniform result envelope.
// @Tags Sofia
// @Accept json
// @Produce json
// @Param request body http.CommandRequest true "Command"
// @Success 200 {object} response.Resp
// @Router /api/v1/sofia/command [post]
func (h *handler) HandleCommand(c *gin.Context) {
	ctx := c.Request.Context()

	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "sofia handler: failed to parse command request: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if req.Command == "" && req.Text == "" {
		pkgResponse.Error(c, sofia.ErrEmptyCommand, nil)
		return
	}

	sc := scopeFromRequest(c)
	dctx := h.dialogContext(req, sc)

	result := h.uc.ProcessCommand(ctx, sc, sofia.Command{
		ID:       req.Command,
		Category: model.ActionCategory(req.Category),
		Text:     req.Text,
		Context:  dctx,
		Payload:  req.Payload,
	})

	h.recordExchange(sc, req, result)

	pkgResponse.OK(c, result)
}

// ListActions is the Gin handler for GET /api/v1/sofia/actions.
// @Summary List contextual actions
// @Description Derives the ranked contextual action list from the caller's dialog state.
// @Tags Sofia
// @Produce json
// @Param document_count query int false "Stored document count"
// @Param guardian_count query int false "Configured guardian count"
// @Param completion_percentage query int false "Protection plan completion (0-100)"
// @Param family_status query string false "single|partner|family|parent_care|business"
// @Success 200 {object} response.Resp
// @Router /api/v1/sofia/actions [get]
func (h *handler) ListActions(c *gin.Context) {
	sc := scopeFromRequest(c)
	dctx := dialogContextFromQuery(c, sc)

	actions := h.uc.ContextualActions(dctx)
	pkgResponse.OK(c, gin.H{"actions": actions})
}

// dialogContext merges the request body context with the request scope and
// falls back to the server-side session history when the caller sent none.
func (h *handler) dialogContext(req CommandRequest, sc model.Scope) model.DialogContext {
	dctx := req.Context
	if dctx.UserID == "" {
		dctx.UserID = sc.UserID
	}
	if dctx.Language == "" {
		dctx.Language = sc.Language
	}
	if len(dctx.ConversationHistory) == 0 && h.sessions != nil && sc.UserID != "" {
		dctx.ConversationHistory = h.sessions.History(sc.UserID)
	}
	return dctx
}

// recordExchange appends the user utterance and the assistant reply to the
// session so follow-up commands carry the conversation.
func (h *handler) recordExchange(sc model.Scope, req CommandRequest, result sofia.CommandResult) {
	if h.sessions == nil || sc.UserID == "" {
		return
	}

	userText := req.Text
	if userText == "" {
		userText = req.Command
	}
	h.sessions.Append(sc.UserID, model.RoleUser, userText)

	if result.Message != "" {
		h.sessions.Append(sc.UserID, model.RoleAssistant, result.Message)
	}
}
