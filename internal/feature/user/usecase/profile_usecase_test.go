package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authdomain "flexxit_backend/internal/feature/auth/domain"
	"flexxit_backend/internal/feature/auth/domain/entity"
	"flexxit_backend/internal/feature/user/domain"
	"flexxit_backend/internal/platform/password"
)

func newStoredUser(t *testing.T, hasher *password.BcryptHasher) entity.User {
	t.Helper()
	hashed, err := hasher.Hash("secret1")
	require.NoError(t, err)
	return entity.User{
		ID:        "u1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Password:  hashed,
		Avatar:    entity.DefaultAvatar,
		Watchlist: []entity.WatchlistEntry{inception},
	}
}

func TestProfileUsecase_UpdateProfile(t *testing.T) {
	hasher := password.NewBcryptHasher(bcrypt.MinCost)

	tests := []struct {
		name       string
		newName    string
		newAvatar  string
		wantName   string
		wantAvatar string
	}{
		{"both fields", "Ada Lovelace", "https://example.com/a.png", "Ada Lovelace", "https://example.com/a.png"},
		{"empty name keeps old", "", "https://example.com/a.png", "Ada", "https://example.com/a.png"},
		{"empty avatar keeps old", "Grace", "", "Grace", entity.DefaultAvatar},
		{"nothing to change", "  ", "", "Ada", entity.DefaultAvatar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newMemoryUsers(newStoredUser(t, hasher))
			uc := NewProfileUsecase(users, hasher)

			user, err := uc.UpdateProfile(context.Background(), "u1", tt.newName, tt.newAvatar)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, user.Name)
			assert.Equal(t, tt.wantAvatar, user.Avatar)

			stored := users.users["u1"]
			assert.Equal(t, tt.wantName, stored.Name)
			assert.Equal(t, tt.wantAvatar, stored.Avatar)
			assert.Equal(t, "ada@example.com", stored.Email)
			assert.Equal(t, []entity.WatchlistEntry{inception}, stored.Watchlist, "watchlist must survive a profile update")
		})
	}

	t.Run("unknown user", func(t *testing.T) {
		uc := NewProfileUsecase(newMemoryUsers(), hasher)
		_, err := uc.UpdateProfile(context.Background(), "ghost", "x", "")
		assert.ErrorIs(t, err, authdomain.ErrUserNotFound)
	})
}

func TestProfileUsecase_ChangePassword(t *testing.T) {
	hasher := password.NewBcryptHasher(bcrypt.MinCost)

	t.Run("success", func(t *testing.T) {
		users := newMemoryUsers(newStoredUser(t, hasher))
		uc := NewProfileUsecase(users, hasher)

		require.NoError(t, uc.ChangePassword(context.Background(), "u1", "secret1", "secret2"))

		stored := users.users["u1"]
		assert.True(t, hasher.Verify(stored.Password, "secret2"))
		assert.False(t, hasher.Verify(stored.Password, "secret1"))
	})

	t.Run("wrong current password", func(t *testing.T) {
		users := newMemoryUsers(newStoredUser(t, hasher))
		uc := NewProfileUsecase(users, hasher)

		err := uc.ChangePassword(context.Background(), "u1", "wrong", "secret2")
		assert.ErrorIs(t, err, domain.ErrInvalidCurrentPassword)
		assert.Equal(t, 0, users.saves)
	})

	t.Run("new password too short", func(t *testing.T) {
		users := newMemoryUsers(newStoredUser(t, hasher))
		uc := NewProfileUsecase(users, hasher)

		err := uc.ChangePassword(context.Background(), "u1", "secret1", "abc")
		assert.ErrorIs(t, err, authdomain.ErrWeakPassword)
		assert.Equal(t, 0, users.saves)
	})

	t.Run("new password longer than bcrypt accepts", func(t *testing.T) {
		users := newMemoryUsers(newStoredUser(t, hasher))
		uc := NewProfileUsecase(users, hasher)

		err := uc.ChangePassword(context.Background(), "u1", "secret1", strings.Repeat("a", 73))
		assert.ErrorIs(t, err, authdomain.ErrWeakPassword)
		assert.Equal(t, 0, users.saves)
	})
}
