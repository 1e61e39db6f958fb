package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "auth_",
	}
}

func (r *RedisStore) key(token string) string {
	return r.prefix + token
}

func (r *RedisStore) Put(ctx context.Context, token, userID string, ttl time.Duration) error {
	if token == "" || userID == "" {
		return fmt.Errorf("session: missing token or user_id")
	}
	if ttl <= 0 {
		return fmt.Errorf("session: ttl must be positive")
	}

	return r.client.Set(ctx, r.key(token), userID, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, token string) (string, error) {
	val, err := r.client.Get(ctx, r.key(token)).Result()
	if err == redis.Nil {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}

func (r *RedisStore) IsAlive(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.client.Ping(ctx).Err() == nil
}
