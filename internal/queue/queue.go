package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task types, one per channel.
const (
	TypeThumbnail    = "thumbnail:generate"
	TypeWelcomeEmail = "email:send"
)

// Queue names. Workers consume both; enqueue targets exactly one.
const (
	QueueThumbnails = "thumbnails"
	QueueEmails     = "emails"
)

// ThumbnailPayload asks the worker to derive renditions for a stored image.
type ThumbnailPayload struct {
	FileID int64  `json:"fileId"`
	UserID string `json:"userId"`
}

// WelcomeEmailPayload asks the worker to send a welcome message.
type WelcomeEmailPayload struct {
	UserID string `json:"userId"`
}

// Enqueuer is what the request path needs from the job queue.
type Enqueuer interface {
	EnqueueThumbnail(ctx context.Context, fileID int64, userID string) error
	EnqueueWelcomeEmail(ctx context.Context, userID string) error
}

// Client is the asynq-backed Enqueuer.
type Client struct {
	client *asynq.Client
}

func NewClient(addr, password string) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (c *Client) EnqueueThumbnail(ctx context.Context, fileID int64, userID string) error {
	payload, err := json.Marshal(ThumbnailPayload{FileID: fileID, UserID: userID})
	if err != nil {
		return fmt.Errorf("queue: marshal thumbnail payload: %w", err)
	}

	_, err = c.client.EnqueueContext(
		ctx,
		asynq.NewTask(TypeThumbnail, payload),
		asynq.Queue(QueueThumbnails),
	)
	return err
}

func (c *Client) EnqueueWelcomeEmail(ctx context.Context, userID string) error {
	payload, err := json.Marshal(WelcomeEmailPayload{UserID: userID})
	if err != nil {
		return fmt.Errorf("queue: marshal email payload: %w", err)
	}

	_, err = c.client.EnqueueContext(
		ctx,
		asynq.NewTask(TypeWelcomeEmail, payload),
		asynq.Queue(QueueEmails),
	)
	return err
}

func (c *Client) Close() error {
	return c.client.Close()
}
