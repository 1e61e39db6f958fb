package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yemmycode/alx-files-manager/internal/logger"
	"github.com/yemmycode/alx-files-manager/internal/middleware"
	"github.com/yemmycode/alx-files-manager/internal/users"
)

type newUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostNewUser registers an account and enqueues the welcome email.
func (h *Handler) PostNewUser(c *gin.Context) {
	var req newUserRequest
	_ = c.ShouldBindJSON(&req)

	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, users.ErrAlreadyExists) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create user"})
		return
	}

	if err := h.enqueuer.EnqueueWelcomeEmail(c.Request.Context(), user.ID); err != nil {
		// Registration already succeeded; the user just gets no email.
		logger.Warn("failed to enqueue welcome email", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"email": user.Email,
		"id":    user.ID,
	})
}

// GetMe returns the authenticated user's public fields.
func (h *Handler) GetMe(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email": user.Email,
		"id":    user.ID,
	})
}
