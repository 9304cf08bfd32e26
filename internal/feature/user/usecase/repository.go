// Package usecase implements the watchlist and profile operations of a signed-in user.
package usecase

import (
	"context"

	"flexxit_backend/internal/feature/auth/domain/entity"
)

// UserRepository loads and persists whole user records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByID returns authdomain.ErrUserNotFound if no user matches.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Save writes the full record. Concurrent saves are not serialized; the last write wins.
	Save(ctx context.Context, user *entity.User) error
}
