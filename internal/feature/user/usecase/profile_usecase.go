package usecase

import (
	"context"
	"fmt"
	"strings"

	"flexxit_backend/internal/feature/auth/domain/entity"
	authusecase "flexxit_backend/internal/feature/auth/usecase"
	"flexxit_backend/internal/feature/user/domain"
)

// PasswordHasher is the subset of the hashing primitive needed to change a password.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

type profileUsecase struct {
	users  UserRepository
	hasher PasswordHasher
}

// NewProfileUsecase creates a profileUsecase.
func NewProfileUsecase(users UserRepository, hasher PasswordHasher) *profileUsecase {
	return &profileUsecase{users: users, hasher: hasher}
}

// UpdateProfile changes the display name and avatar. Empty values keep the stored ones.
func (u *profileUsecase) UpdateProfile(ctx context.Context, userID, name, avatar string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
	}
	if avatar = strings.TrimSpace(avatar); avatar != "" {
		user.Avatar = avatar
	}

	if err := u.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return user, nil
}

// ChangePassword replaces the password hash after verifying the current password.
func (u *profileUsecase) ChangePassword(ctx context.Context, userID, current, next string) error {
	if err := authusecase.ValidatePassword(next); err != nil {
		return err
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !u.hasher.Verify(user.Password, current) {
		return domain.ErrInvalidCurrentPassword
	}

	hashed, err := u.hasher.Hash(next)
	if err != nil {
		return err
	}
	user.Password = hashed

	if err := u.users.Save(ctx, user); err != nil {
		return fmt.Errorf("failed to save password: %w", err)
	}
	return nil
}
