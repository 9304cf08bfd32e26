// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"flexxit_backend/internal/feature/auth/domain"
	"flexxit_backend/internal/feature/auth/domain/entity"
	"flexxit_backend/internal/feature/auth/transport/http/dto"
	"flexxit_backend/internal/feature/auth/usecase"
	"flexxit_backend/internal/platform/httpapi"
	jwtmw "flexxit_backend/internal/platform/jwt"
)

// AuthUsecase defines the authentication use cases.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates an account and returns a session for it.
	Register(ctx context.Context, name, email, password string) (*usecase.Session, error)
	// Login authenticates a user and returns a session on success.
	Login(ctx context.Context, email, password string) (*usecase.Session, error)
	// Profile returns the stored user for the given ID.
	Profile(ctx context.Context, userID string) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register.
// - 400 on validation errors or an already registered email
// - 201 with the profile and token on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}

	slog.Info("user registered", "user_id", session.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.SessionRes{ProfileRes: dto.NewProfileRes(session.User), Token: session.Token})
}

// Login handles POST /api/auth/login.
// Unknown email and wrong password both produce the same 401 response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}

	slog.Info("user login successful", "user_id", session.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.SessionRes{ProfileRes: dto.NewProfileRes(session.User), Token: session.Token})
}

// Profile handles GET /api/auth/profile. It must run behind jwtmw.AuthRequired.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		httpapi.Abort(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	// The middleware already resolved the user; re-read to return fresh fields.
	fresh, err := h.auth.Profile(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileRes(fresh))
}

// writeError maps auth domain errors to HTTP responses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		httpapi.Abort(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrDuplicateAccount):
		httpapi.Abort(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, domain.ErrWeakPassword), errors.Is(err, domain.ErrInvalidInput):
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		httpapi.Abort(c, http.StatusNotFound, "User not found")
	default:
		slog.Error("auth request failed", "error", err, "path", c.FullPath())
		httpapi.Abort(c, http.StatusInternalServerError, "Server Error")
	}
}
