package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/yemmycode/alx-files-manager/internal/config"
	"github.com/yemmycode/alx-files-manager/internal/db"
	"github.com/yemmycode/alx-files-manager/internal/files"
	"github.com/yemmycode/alx-files-manager/internal/logger"
	"github.com/yemmycode/alx-files-manager/internal/mailer"
	"github.com/yemmycode/alx-files-manager/internal/users"
	"github.com/yemmycode/alx-files-manager/internal/worker"
)

func main() {
	logger.Init()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("failed to open database", map[string]any{
			"error": err.Error(),
		})
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Fatal("database unreachable", map[string]any{
			"error": err.Error(),
		})
	}
	defer sqlDB.Close()

	metaDB := &db.DB{DB: sqlDB}

	var mail mailer.Mailer = mailer.LogMailer{}
	if cfg.SMTPAddr != "" {
		smtp, err := mailer.NewSMTP(
			cfg.SMTPAddr,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPSender,
		)
		if err != nil {
			logger.Fatal("failed to configure mailer", map[string]any{
				"error": err.Error(),
			})
		}
		mail = smtp
	}

	srv := worker.NewServer(
		cfg.RedisAddr,
		cfg.RedisPassword,
		cfg.WorkerConcurrency,
		worker.NewThumbnailHandler(files.NewPGStore(metaDB)),
		worker.NewEmailHandler(users.NewPGStore(metaDB), mail),
	)

	go func() {
		<-ctx.Done()
		logger.Info("shutdown signal received", nil)
		srv.Shutdown()
	}()

	logger.Info("worker started", map[string]any{
		"concurrency": cfg.WorkerConcurrency,
	})

	if err := srv.Run(); err != nil {
		logger.Fatal("worker failed", map[string]any{
			"error": err.Error(),
		})
	}

	logger.Info("worker stopped cleanly", nil)
}
