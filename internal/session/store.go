package session

import (
	"context"
	"errors"
	"time"
)

// TTL is how long an issued token stays valid. Tokens are never
// extended implicitly; re-authenticating issues a fresh one.
const TTL = 24 * time.Hour

// ErrNoSession is returned by Get when the token is unknown or expired.
var ErrNoSession = errors.New("session: no such session")

// Store maps opaque tokens to user ids with per-entry expiry.
// Implementations (e.g., Redis) must remain stateless and opaque;
// expiry is enforced by the store itself, not polled by callers.
type Store interface {
	Put(ctx context.Context, token, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
	IsAlive(ctx context.Context) bool
}
