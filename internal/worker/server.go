package worker

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/yemmycode/alx-files-manager/internal/logger"
	"github.com/yemmycode/alx-files-manager/internal/queue"
)

// Server consumes both job channels. A failed job is logged and, once
// retries are exhausted, lands in asynq's archived set for operators;
// it never crashes the process.
type Server struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewServer(
	addr, password string,
	concurrency int,
	thumbnails *ThumbnailHandler,
	emails *EmailHandler,
) *Server {

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     addr,
			Password: password,
		},
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				queue.QueueThumbnails: 1,
				queue.QueueEmails:     1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(
				func(ctx context.Context, task *asynq.Task, err error) {
					logger.Error("job failed", map[string]any{
						"type":  task.Type(),
						"error": err.Error(),
					})
				},
			),
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(queue.TypeThumbnail, thumbnails)
	mux.Handle(queue.TypeWelcomeEmail, emails)

	return &Server{srv: srv, mux: mux}
}

func (s *Server) Run() error {
	return s.srv.Run(s.mux)
}

func (s *Server) Shutdown() {
	s.srv.Shutdown()
}
