package usecase

import (
	"context"
	"fmt"
	"strings"

	"flexxit_backend/internal/feature/auth/domain/entity"
	"flexxit_backend/internal/feature/user/domain"
)

type watchlistUsecase struct {
	users UserRepository
}

// NewWatchlistUsecase creates a watchlistUsecase.
func NewWatchlistUsecase(users UserRepository) *watchlistUsecase {
	return &watchlistUsecase{users: users}
}

// List returns the user's watchlist in insertion order. The result is never nil.
func (u *watchlistUsecase) List(ctx context.Context, userID string) ([]entity.WatchlistEntry, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Entries(), nil
}

// Add appends the entry and persists the record before returning the updated watchlist.
// A second add of the same pair fails with domain.ErrDuplicateEntry.
func (u *watchlistUsecase) Add(ctx context.Context, userID string, e entity.WatchlistEntry) ([]entity.WatchlistEntry, error) {
	e, err := normalizeEntry(e)
	if err != nil {
		return nil, err
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.AddEntry(e) {
		return nil, domain.ErrDuplicateEntry
	}
	if err := u.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save watchlist: %w", err)
	}
	return user.Entries(), nil
}

// Remove drops the entry and persists the record. Removing an absent pair succeeds.
func (u *watchlistUsecase) Remove(ctx context.Context, userID string, e entity.WatchlistEntry) ([]entity.WatchlistEntry, error) {
	e, err := normalizeEntry(e)
	if err != nil {
		return nil, err
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.RemoveEntry(e)
	if err := u.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save watchlist: %w", err)
	}
	return user.Entries(), nil
}

func normalizeEntry(e entity.WatchlistEntry) (entity.WatchlistEntry, error) {
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" {
		return e, fmt.Errorf("%w: id is required", domain.ErrInvalidEntry)
	}
	if !e.MediaType.Valid() {
		return e, fmt.Errorf("%w: unsupported media type %q", domain.ErrInvalidEntry, e.MediaType)
	}
	return e, nil
}
