package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	return NewRedisStore(client), mr
}

func TestPutGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token := NewToken()
	if err := store.Put(ctx, token, "user-1", TTL); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "user-1" {
		t.Errorf("Get = %q, want %q", got, "user-1")
	}
}

func TestGetUnknownToken(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "no-such-token")
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("Get unknown token: err = %v, want ErrNoSession", err)
	}
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token := NewToken()
	if err := store.Put(ctx, token, "user-1", TTL); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Delete(ctx, token); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := store.Get(ctx, token); !errors.Is(err, ErrNoSession) {
		t.Errorf("Get after Delete: err = %v, want ErrNoSession", err)
	}

	// deleting an absent token is not an error
	if err := store.Delete(ctx, token); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestEntryExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token := NewToken()
	if err := store.Put(ctx, token, "user-1", TTL); err != nil {
		t.Fatalf("Put: %v", err)
	}

	mr.FastForward(TTL + time.Second)

	if _, err := store.Get(ctx, token); !errors.Is(err, ErrNoSession) {
		t.Errorf("Get after expiry: err = %v, want ErrNoSession", err)
	}
}

func TestKeyPrefix(t *testing.T) {
	store, mr := newTestStore(t)

	token := NewToken()
	if err := store.Put(context.Background(), token, "user-1", TTL); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if _, err := mr.Get("auth_" + token); err != nil {
		t.Errorf("expected key auth_%s in redis: %v", token, err)
	}
}

func TestPutValidation(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "", "user-1", TTL); err == nil {
		t.Error("Put with empty token: want error")
	}
	if err := store.Put(ctx, "tok", "", TTL); err == nil {
		t.Error("Put with empty user id: want error")
	}
	if err := store.Put(ctx, "tok", "user-1", 0); err == nil {
		t.Error("Put with zero ttl: want error")
	}
}

func TestIsAlive(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if !store.IsAlive(ctx) {
		t.Error("IsAlive = false with a running redis")
	}

	mr.Close()

	if store.IsAlive(ctx) {
		t.Error("IsAlive = true with redis down")
	}
}
