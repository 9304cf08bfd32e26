// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"flexxit_backend/internal/feature/auth/domain"
	"flexxit_backend/internal/feature/auth/domain/entity"
	"flexxit_backend/internal/feature/auth/usecase"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// userGorm is the GORM implementation of the user repositories.
// It backs the credential store on PostgreSQL in production and SQLite locally.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm satisfies the auth usecase repository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a userGorm on top of the given connection.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts a new user.
// It returns domain.ErrDuplicateAccount if the email is already registered.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return domain.ErrInvalidInput
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateAccount
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email.
// It returns domain.ErrUserNotFound if no user matches.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// It returns domain.ErrUserNotFound if no user matches.
func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Save writes the full user record, including the embedded watchlist.
// Concurrent saves for the same user are not serialized: the last write wins.
func (r *userGorm) Save(ctx context.Context, u *entity.User) error {
	if u == nil || u.ID == "" {
		return domain.ErrInvalidInput
	}
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateAccount
		}
		return err
	}
	return nil
}

// isDuplicateKey reports whether err is a unique constraint violation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
