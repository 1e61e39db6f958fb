package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/yemmycode/alx-files-manager/internal/logger"
	"github.com/yemmycode/alx-files-manager/internal/mailer"
	"github.com/yemmycode/alx-files-manager/internal/queue"
	"github.com/yemmycode/alx-files-manager/internal/users"
)

const welcomeSubject = "Welcome to Files Manager"

// EmailHandler consumes welcome-email jobs enqueued at registration.
type EmailHandler struct {
	users  users.Store
	mailer mailer.Mailer
}

func NewEmailHandler(store users.Store, m mailer.Mailer) *EmailHandler {
	return &EmailHandler{users: store, mailer: m}
}

func (h *EmailHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("email: malformed payload: %v: %w", err, asynq.SkipRetry)
	}

	if payload.UserID == "" {
		return fmt.Errorf("email: userId is required: %w", asynq.SkipRetry)
	}

	user, err := h.users.GetByID(ctx, payload.UserID)
	if errors.Is(err, users.ErrNotFound) {
		return fmt.Errorf("email: user not found: %w", asynq.SkipRetry)
	}
	if err != nil {
		return fmt.Errorf("email: resolve user %s: %w", payload.UserID, err)
	}

	msg := mailer.Message{
		To:       user.Email,
		Subject:  welcomeSubject,
		HTMLBody: welcomeBody(user.Email),
	}

	if err := h.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("email: send to %s: %w", user.Email, err)
	}

	logger.Info("welcome email sent", map[string]any{
		"user_id": payload.UserID,
	})
	return nil
}

func welcomeBody(email string) string {
	return fmt.Sprintf(`<div>
<h3>Hello %s,</h3>
<p>Welcome to <b>Files Manager</b>, a simple file management API.
Upload files, organize them in folders and share them when you are ready.</p>
</div>`, email)
}
