package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/yemmycode/alx-files-manager/internal/session"
	"github.com/yemmycode/alx-files-manager/internal/users"
)

// ErrUnauthenticated is the only failure a resolver reports. A missing
// user, a bad password, an expired token and a store error are all
// indistinguishable to the caller.
var ErrUnauthenticated = errors.New("auth: unauthenticated")

// Resolver turns inbound credentials into a resolved user.
type Resolver struct {
	sessions session.Store
	users    *users.Service
}

func NewResolver(sessions session.Store, userService *users.Service) *Resolver {
	return &Resolver{
		sessions: sessions,
		users:    userService,
	}
}

// FromBasicAuth resolves an "Authorization: Basic <base64>" header.
// The decoded credentials split on the first colon; the password
// itself may contain colons.
func (r *Resolver) FromBasicAuth(ctx context.Context, header string) (*users.User, error) {
	scheme, credentials, ok := strings.Cut(header, " ")
	if !ok || scheme != "Basic" || credentials == "" {
		return nil, ErrUnauthenticated
	}

	decoded, err := base64.StdEncoding.DecodeString(credentials)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return nil, ErrUnauthenticated
	}

	user, err := r.users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

// FromToken resolves an opaque session token to its user.
func (r *Resolver) FromToken(ctx context.Context, token string) (*users.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	userID, err := r.sessions.Get(ctx, token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}
