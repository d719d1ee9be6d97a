package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sofia-assistant/internal/model"
)

// Request headers set by the host application after authentication.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
	HeaderLanguage = "X-User-Lang"
)

// CommandRequest is the POST body for the command endpoint.
type CommandRequest struct {
	Command  string              `json:"command"`
	Category string              `json:"category"`
	Text     string              `json:"text"`
	Context  model.DialogContext `json:"context"`
	Payload  map[string]any      `json:"payload"`
}

func scopeFromRequest(c *gin.Context) model.Scope {
	return model.Scope{
		UserID:   c.GetHeader(HeaderUserID),
		Username: c.GetHeader(HeaderUserName),
		Language: c.GetHeader(HeaderLanguage),
	}
}

func dialogContextFromQuery(c *gin.Context, sc model.Scope) model.DialogContext {
	return model.DialogContext{
		UserID:               sc.UserID,
		UserName:             sc.Username,
		Language:             sc.Language,
		DocumentCount:        intQuery(c, "document_count"),
		GuardianCount:        intQuery(c, "guardian_count"),
		CompletionPercentage: intQuery(c, "completion_percentage"),
		FamilyStatus:         model.FamilyStatus(c.Query("family_status")),
		CurrentPage:          c.Query("current_page"),
	}
}

func intQuery(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
