package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yemmycode/alx-files-manager/internal/auth"
	"github.com/yemmycode/alx-files-manager/internal/users"
)

// collision-proof gin context key
const userContextKey = "middleware.user"

// UserFromContext extracts the resolved user attached by an auth middleware.
func UserFromContext(c *gin.Context) (*users.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*users.User)
	return user, ok
}

type Auth struct {
	resolver *auth.Resolver
}

func NewAuth(resolver *auth.Resolver) *Auth {
	return &Auth{resolver: resolver}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

// RequireBasicAuth guards a route with Basic credentials. On failure
// the request is short-circuited; no handler work happens.
func (a *Auth) RequireBasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.resolver.FromBasicAuth(
			c.Request.Context(),
			c.GetHeader("Authorization"),
		)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireToken guards a route with an X-Token session token.
func (a *Auth) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.resolver.FromToken(
			c.Request.Context(),
			c.GetHeader("X-Token"),
		)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalToken resolves X-Token when present but never rejects; an
// unresolvable token leaves the request anonymous.
func (a *Auth) OptionalToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.resolver.FromToken(
			c.Request.Context(),
			c.GetHeader("X-Token"),
		)
		if err == nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}
