package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"flexxit_backend/internal/feature/auth/domain"
	"flexxit_backend/internal/feature/auth/domain/entity"
	"flexxit_backend/internal/platform/password"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id string) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

// memoryUserRepository keeps users in a map keyed by email.
type memoryUserRepository struct {
	byEmail map[string]*entity.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{byEmail: map[string]*entity.User{}}
}

func (m *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return domain.ErrDuplicateAccount
	}
	m.byEmail[user.Email] = user
	return nil
}

func (m *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *memoryUserRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// mockTokenGenerator is a mock implementation of the TokenGenerator interface.
type mockTokenGenerator struct {
	GenerateTokenFunc func(userID string) (string, error)
}

func (m *mockTokenGenerator) GenerateToken(userID string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID)
	}
	return "token-" + userID, nil
}

func newTestUsecase(repo UserRepository, tokens TokenGenerator) *authUsecase {
	return NewAuthUsecase(repo, tokens, password.NewBcryptHasher(bcrypt.MinCost))
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		var created *entity.User
		repo := &mockUserRepository{
			CreateFunc: func(_ context.Context, user *entity.User) error {
				created = user
				return nil
			},
		}

		uc := newTestUsecase(repo, &mockTokenGenerator{})
		session, err := uc.Register(context.Background(), "Ada", "  Ada@Example.com ", "secret1")
		require.NoError(t, err)

		require.NotNil(t, created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Ada", created.Name)
		assert.Equal(t, "ada@example.com", created.Email, "email should be normalized")
		assert.Equal(t, entity.DefaultAvatar, created.Avatar)
		assert.NotEqual(t, "secret1", created.Password, "password is not hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret1")))
		assert.NotNil(t, created.Watchlist)
		assert.Empty(t, created.Watchlist)

		assert.Equal(t, "token-"+created.ID, session.Token)
		assert.Same(t, created, session.User)
	})

	t.Run("second registration with the same email fails", func(t *testing.T) {
		uc := newTestUsecase(newMemoryUserRepository(), &mockTokenGenerator{})

		_, err := uc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
		require.NoError(t, err)

		_, err = uc.Register(context.Background(), "Other", "ADA@example.com", "another1")
		assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
	})

	t.Run("duplicate detected by the store", func(t *testing.T) {
		repo := &mockUserRepository{
			CreateFunc: func(_ context.Context, _ *entity.User) error {
				return domain.ErrDuplicateAccount
			},
		}
		uc := newTestUsecase(repo, &mockTokenGenerator{})

		_, err := uc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
		assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
	})

	t.Run("short password", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{}, &mockTokenGenerator{})

		_, err := uc.Register(context.Background(), "Ada", "ada@example.com", "12345")
		assert.ErrorIs(t, err, domain.ErrWeakPassword)
	})

	t.Run("password longer than 72 bytes", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{}, &mockTokenGenerator{})

		_, err := uc.Register(context.Background(), "Ada", "ada@example.com", strings.Repeat("a", 80))
		assert.ErrorIs(t, err, domain.ErrWeakPassword)
	})

	t.Run("password of exactly 72 bytes", func(t *testing.T) {
		uc := newTestUsecase(newMemoryUserRepository(), &mockTokenGenerator{})

		_, err := uc.Register(context.Background(), "Ada", "ada@example.com", strings.Repeat("a", 72))
		assert.NoError(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{}, &mockTokenGenerator{})

		_, err := uc.Register(context.Background(), "  ", "ada@example.com", "secret1")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("lookup failure is propagated", func(t *testing.T) {
		dbErr := errors.New("database error")
		repo := &mockUserRepository{
			FindByEmailFunc: func(_ context.Context, _ string) (*entity.User, error) {
				return nil, dbErr
			},
		}
		uc := newTestUsecase(repo, &mockTokenGenerator{})

		_, err := uc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, domain.ErrDuplicateAccount)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := newTestUsecase(repo, &mockTokenGenerator{})
	registered, err := uc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	t.Run("successful login", func(t *testing.T) {
		session, err := uc.Login(context.Background(), "ada@example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, session.User.ID)
		assert.Equal(t, "token-"+registered.User.ID, session.Token)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		session, err := uc.Login(context.Background(), "ADA@Example.COM", "secret1")
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, session.User.ID)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, wrongPassword := uc.Login(context.Background(), "ada@example.com", "wrong-password")
		_, unknownEmail := uc.Login(context.Background(), "nobody@example.com", "secret1")

		require.Error(t, wrongPassword)
		require.Error(t, unknownEmail)
		assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})

	t.Run("token generation failure", func(t *testing.T) {
		failing := newTestUsecase(repo, &mockTokenGenerator{
			GenerateTokenFunc: func(string) (string, error) {
				return "", errors.New("failed to sign token")
			},
		})

		_, err := failing.Login(context.Background(), "ada@example.com", "secret1")
		require.Error(t, err)
		assert.Equal(t, "failed to generate token: failed to sign token", err.Error())
	})

	t.Run("repository failure is not reported as invalid credentials", func(t *testing.T) {
		broken := newTestUsecase(&mockUserRepository{
			FindByEmailFunc: func(context.Context, string) (*entity.User, error) {
				return nil, errors.New("connection reset")
			},
		}, &mockTokenGenerator{})

		_, err := broken.Login(context.Background(), "ada@example.com", "secret1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthUsecase_Profile(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := newTestUsecase(repo, &mockTokenGenerator{})
	registered, err := uc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	user, err := uc.Profile(context.Background(), registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)

	_, err = uc.Profile(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
