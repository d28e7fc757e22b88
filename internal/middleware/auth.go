// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"strings"

	"tourbook/internal/authz"
	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user data
const (
	UserKey = "user"
	// TokenCookie carries the session token for browsers.
	TokenCookie = "jwt"
)

// Authenticator resolves a session token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// TokenFromRequest reads the bearer token from the Authorization header,
// falling back to the session cookie.
func TokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

// Protect rejects requests without a valid session and stores the user in
// the context.
func Protect(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Authenticate(c.Request.Context(), TokenFromRequest(c))
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// IsLoggedIn stores the user of a valid session cookie, if any. It never
// rejects a request.
func IsLoggedIn(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(TokenCookie)
		if err == nil && cookie != "" {
			if user, err := auth.Authenticate(c.Request.Context(), cookie); err == nil {
				c.Set(UserKey, user)
			}
		}
		c.Next()
	}
}

// RestrictTo allows only users with one of the given roles. It must run
// after Protect.
func RestrictTo(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			_ = c.Error(apperrors.ErrNotLoggedIn)
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		_ = c.Error(apperrors.ErrForbidden)
		c.Abort()
	}
}

// Authorize restricts a route to the roles allowed to perform action.
func Authorize(authorizer authz.Authorizer, action string) gin.HandlerFunc {
	return RestrictTo(authorizer.RolesFor(action)...)
}

// CurrentUser returns the signed-in user, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(UserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
