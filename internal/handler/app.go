package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStatus reports connectivity of the session and metadata stores.
func (h *Handler) GetStatus(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"redis": h.sessions.IsAlive(ctx),
		"db":    h.stats.IsAlive(ctx),
	})
}

// GetStats reports the number of users and files.
func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	userCount, err := h.stats.CountUsers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch stats"})
		return
	}

	fileCount, err := h.stats.CountFiles(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": userCount,
		"files": fileCount,
	})
}
