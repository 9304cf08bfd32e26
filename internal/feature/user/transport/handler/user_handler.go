// Package handler provides the HTTP handlers for the signed-in user's watchlist and profile.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "flexxit_backend/internal/feature/auth/domain"
	"flexxit_backend/internal/feature/auth/domain/entity"
	authdto "flexxit_backend/internal/feature/auth/transport/http/dto"
	"flexxit_backend/internal/feature/user/domain"
	"flexxit_backend/internal/feature/user/transport/http/dto"
	"flexxit_backend/internal/platform/httpapi"
	jwtmw "flexxit_backend/internal/platform/jwt"
)

// WatchlistUsecase defines the watchlist operations used by the handler.
type WatchlistUsecase interface {
	List(ctx context.Context, userID string) ([]entity.WatchlistEntry, error)
	Add(ctx context.Context, userID string, e entity.WatchlistEntry) ([]entity.WatchlistEntry, error)
	Remove(ctx context.Context, userID string, e entity.WatchlistEntry) ([]entity.WatchlistEntry, error)
}

// ProfileUsecase defines the profile operations used by the handler.
type ProfileUsecase interface {
	UpdateProfile(ctx context.Context, userID, name, avatar string) (*entity.User, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
}

// UserHandler serves /api/user. Every route must run behind jwtmw.AuthRequired.
type UserHandler struct {
	watchlist WatchlistUsecase
	profile   ProfileUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(watchlist WatchlistUsecase, profile ProfileUsecase) *UserHandler {
	return &UserHandler{watchlist: watchlist, profile: profile}
}

// GetWatchlist handles GET /api/user/watchlist.
func (h *UserHandler) GetWatchlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.watchlist.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddToWatchlist handles POST /api/user/watchlist/add.
// - 400 when the pair is already present
// - 201 with the updated watchlist on success
func (h *UserHandler) AddToWatchlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.WatchlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.watchlist.Add(c.Request.Context(), userID, req.Entry())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entries)
}

// RemoveFromWatchlist handles POST /api/user/watchlist/remove.
// Removing an entry that is not present still returns 200.
func (h *UserHandler) RemoveFromWatchlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.WatchlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.watchlist.Remove(c.Request.Context(), userID, req.Entry())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// UpdateProfile handles PUT /api/user/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.profile.UpdateProfile(c.Request.Context(), userID, req.Name, req.Avatar)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, authdto.NewProfileRes(user))
}

// ChangePassword handles PUT /api/user/profile/password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.profile.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		slog.Warn("password change failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}

	slog.Info("password changed", "user_id", userID)
	c.JSON(http.StatusOK, httpapi.MessageResponse{Message: "Password updated successfully"})
}

func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(jwtmw.ContextUserID)
	if userID == "" {
		httpapi.Abort(c, http.StatusUnauthorized, "Not authorized")
		return "", false
	}
	return userID, true
}

// writeError maps user feature errors to HTTP responses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateEntry):
		httpapi.Abort(c, http.StatusBadRequest, "Item already in watchlist")
	case errors.Is(err, domain.ErrInvalidEntry), errors.Is(err, authdomain.ErrWeakPassword):
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCurrentPassword):
		httpapi.Abort(c, http.StatusUnauthorized, "Invalid current password")
	case errors.Is(err, authdomain.ErrUserNotFound):
		httpapi.Abort(c, http.StatusNotFound, "User not found")
	default:
		slog.Error("user request failed", "error", err, "path", c.FullPath())
		httpapi.Abort(c, http.StatusInternalServerError, "Server Error")
	}
}
