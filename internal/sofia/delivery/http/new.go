package http

import (
	"github.com/gin-gonic/gin"

	"sofia-assistant/internal/model"
	"sofia-assistant/internal/sofia"
	pkgLog "sofia-assistant/pkg/log"
)

// Handler is the interface for the assistant HTTP delivery handler.
type Handler interface {
	HandleCommand(c *gin.Context)
	ListActions(c *gin.Context)
}

// SessionStore is the delivery-side view of the conversation memory.
type SessionStore interface {
	Append(userID, role, content string) model.ConversationMessage
	History(userID string) []model.ConversationMessage
}

// New creates a new assistant delivery handler. sessions may be nil, in
// which case no conversation memory is kept server-side.
func New(l pkgLog.Logger, uc sofia.UseCase, sessions SessionStore) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
	}
}
