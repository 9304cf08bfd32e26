// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"flexxit_backend/internal/feature/auth/domain"
	"flexxit_backend/internal/feature/auth/domain/entity"
)

const (
	// MinPasswordLength is the minimum number of characters in a password.
	MinPasswordLength = 6
	// MaxPasswordLength is the longest password bcrypt accepts, in bytes.
	MaxPasswordLength = 72

	// dummyHash is compared against when no user matches the email so that
	// unknown-email and wrong-password take the same path.
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user.
	// It returns domain.ErrDuplicateAccount if the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user with the given (normalized) email.
	// It returns domain.ErrUserNotFound if no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user with the given ID.
	// It returns domain.ErrUserNotFound if no user matches.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// TokenGenerator issues signed session tokens.
type TokenGenerator interface {
	GenerateToken(userID string) (string, error)
}

// PasswordHasher hides the password hashing primitive.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// Session is the result of a successful login or registration.
type Session struct {
	User  *entity.User
	Token string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenGenerator
	hasher PasswordHasher
	newID  func() string
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator, hasher PasswordHasher) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		newID:  uuid.NewString,
	}
}

// ValidatePassword checks the password length bounds.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", domain.ErrWeakPassword, MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: must be at most %d bytes long", domain.ErrWeakPassword, MaxPasswordLength)
	}
	return nil
}

// Register creates an account with a hashed password and issues a session token.
func (u *authUsecase) Register(ctx context.Context, name, email, password string) (*Session, error) {
	name = strings.TrimSpace(name)
	email = entity.NormalizeEmail(email)
	if name == "" || email == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	existing, err := u.users.FindByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrDuplicateAccount
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:        u.newID(),
		Name:      name,
		Email:     email,
		Password:  hashed,
		Avatar:    entity.DefaultAvatar,
		Watchlist: []entity.WatchlistEntry{},
	}
	// The unique index still guards against a concurrent registration slipping past the lookup.
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.issue(user)
}

// Login authenticates a user and issues a session token.
// The password comparison always runs, even when the email is unknown.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := u.users.FindByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	matched := u.hasher.Verify(passwordHash, password)
	if err != nil || !matched {
		return nil, domain.ErrInvalidCredentials
	}

	return u.issue(user)
}

// Profile returns the user with the given ID.
func (u *authUsecase) Profile(ctx context.Context, userID string) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

func (u *authUsecase) issue(user *entity.User) (*Session, error) {
	token, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &Session{User: user, Token: token}, nil
}
