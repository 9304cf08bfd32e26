package jwtmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"flexxit_backend/internal/feature/auth/domain"
	"flexxit_backend/internal/feature/auth/domain/entity"
	"flexxit_backend/internal/platform/httpapi"
)

const (
	// ContextUserID is the gin context key holding the authenticated user ID.
	ContextUserID = "userID"
	// ContextUser is the gin context key holding the resolved *entity.User.
	ContextUser = "user"
)

// TokenParser verifies a token and returns the user ID it was issued for.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// UserFinder resolves a user ID to the stored user record.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that only lets requests with a valid
// bearer token for an existing user through.
// A token for a deleted user is rejected with 401, not 404.
func AuthRequired(tokens TokenParser, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			httpapi.Abort(c, http.StatusUnauthorized, "Not authorized, no token")
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		// 2. Verify signature and expiry
		userID, err := tokens.ParseToken(tokenStr)
		if err != nil {
			httpapi.Abort(c, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		// 3. Resolve the user record
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				httpapi.Abort(c, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}
			slog.Error("failed to resolve user for token", "user_id", userID, "error", err)
			httpapi.Abort(c, http.StatusInternalServerError, "Server Error")
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by AuthRequired.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok && user != nil
}
