package web

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Flash categories, named after the Bootstrap alert classes used to display them.
const (
	flashSuccess = "success"
	flashWarning = "warning"
	flashDanger  = "danger"
)

var flashCategories = []string{flashSuccess, flashWarning, flashDanger}

type flash struct {
	Category string
	Message  string
}

// addFlash stores a message in the session, to be shown on the next rendered page.
func (h *handlers) addFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	if err := session.Save(); err != nil {
		h.log.Error("failed to save flash message", zap.String("requestID", requestID(c)), zap.Error(err))
	}
}

// popFlashes returns and clears the pending messages.
func (h *handlers) popFlashes(c *gin.Context) (flashes []flash) {
	session := sessions.Default(c)
	for _, category := range flashCategories {
		for _, v := range session.Flashes(category) {
			if msg, ok := v.(string); ok {
				flashes = append(flashes, flash{Category: category, Message: msg})
			}
		}
	}
	if len(flashes) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		h.log.Error("failed to clear flash messages", zap.String("requestID", requestID(c)), zap.Error(err))
	}
	return flashes
}
