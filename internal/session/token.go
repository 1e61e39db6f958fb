package session

import "github.com/google/uuid"

// NewToken generates an opaque session token.
func NewToken() string {
	return uuid.NewString()
}
