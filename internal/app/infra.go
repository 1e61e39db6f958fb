package app

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/yemmycode/alx-files-manager/internal/config"
	"github.com/yemmycode/alx-files-manager/internal/db"
	"github.com/yemmycode/alx-files-manager/internal/logger"
	"github.com/yemmycode/alx-files-manager/internal/queue"
	"github.com/yemmycode/alx-files-manager/internal/redis"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client
	Queue *queue.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	queueClient := queue.NewClient(cfg.RedisAddr, cfg.RedisPassword)

	return &Infra{
		DB:    &db.DB{DB: sqlDB},
		Redis: redisClient,
		Queue: queueClient,
	}, nil
}

func (i *Infra) Close() error {
	if err := i.Queue.Close(); err != nil {
		return err
	}
	return i.DB.Close()
}
