package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yemmycode/alx-files-manager/internal/middleware"
	"github.com/yemmycode/alx-files-manager/internal/session"
)

// GetConnect issues a fresh session token for a Basic-authenticated
// user. A user may hold several valid tokens at once.
func (h *Handler) GetConnect(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	token := session.NewToken()

	err := h.sessions.Put(c.Request.Context(), token, user.ID, session.TTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetDisconnect drops the presented token. Idempotent.
func (h *Handler) GetDisconnect(c *gin.Context) {
	token := c.GetHeader("X-Token")

	if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to destroy session"})
		return
	}

	c.Status(http.StatusNoContent)
}
