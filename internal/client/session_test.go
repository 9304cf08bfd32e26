package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flexxit_backend/internal/feature/auth/domain/entity"
)

const validToken = "good-token"

var matrix = entity.WatchlistEntry{ID: "603", MediaType: entity.MediaTypeMovie}

// fakeBackend imitates the user-facing API for a single account.
type fakeBackend struct {
	mu        sync.Mutex
	watchlist []entity.WatchlistEntry
	profile   Profile
	password  string
	// failWatchlist makes watchlist mutations fail with this status when non-zero.
	failWatchlist int
	calls         []string
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	b := &fakeBackend{
		watchlist: []entity.WatchlistEntry{},
		profile:   Profile{ID: "u1", Name: "Ada", Email: "ada@example.com", Avatar: entity.DefaultAvatar},
		password:  "secret1",
	}
	server := httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(server.Close)
	return b, server
}

// with runs fn while holding the backend lock.
func (b *fakeBackend) with(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, r.Method+" "+r.URL.Path)

	var body map[string]string
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	switch r.URL.Path {
	case "/api/auth/login":
		if body["email"] != b.profile.Email || body["password"] != b.password {
			writeJSON(w, http.StatusUnauthorized, messageResponse{"Invalid email or password"})
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse{Profile: b.profile, Token: validToken})
		return
	case "/api/auth/register":
		writeJSON(w, http.StatusCreated, sessionResponse{
			Profile: Profile{ID: "u2", Name: body["name"], Email: body["email"], Avatar: entity.DefaultAvatar},
			Token:   "register-token",
		})
		return
	}

	if r.Header.Get("Authorization") != "Bearer "+validToken {
		writeJSON(w, http.StatusUnauthorized, messageResponse{"Not authorized, token failed"})
		return
	}

	switch r.URL.Path {
	case "/api/auth/profile":
		writeJSON(w, http.StatusOK, b.profile)
	case "/api/user/watchlist":
		writeJSON(w, http.StatusOK, b.watchlist)
	case "/api/user/watchlist/add", "/api/user/watchlist/remove":
		if b.failWatchlist != 0 {
			writeJSON(w, b.failWatchlist, messageResponse{"Server Error"})
			return
		}
		e := entity.WatchlistEntry{ID: body["id"], MediaType: entity.MediaType(body["mediaType"])}
		i := indexOf(b.watchlist, e)
		if strings.HasSuffix(r.URL.Path, "/add") {
			if i >= 0 {
				writeJSON(w, http.StatusBadRequest, messageResponse{duplicateEntryMessage})
				return
			}
			b.watchlist = append(b.watchlist, e)
			writeJSON(w, http.StatusCreated, b.watchlist)
			return
		}
		if i >= 0 {
			b.watchlist = append(b.watchlist[:i], b.watchlist[i+1:]...)
		}
		writeJSON(w, http.StatusOK, b.watchlist)
	case "/api/user/profile":
		if body["name"] != "" {
			b.profile.Name = body["name"]
		}
		if body["avatar"] != "" {
			b.profile.Avatar = body["avatar"]
		}
		writeJSON(w, http.StatusOK, b.profile)
	case "/api/user/profile/password":
		if body["currentPassword"] != b.password {
			writeJSON(w, http.StatusUnauthorized, messageResponse{"Invalid current password"})
			return
		}
		b.password = body["newPassword"]
		writeJSON(w, http.StatusOK, messageResponse{"Password updated successfully"})
	default:
		writeJSON(w, http.StatusNotFound, messageResponse{"Not found"})
	}
}

func newTestSession(t *testing.T, server *httptest.Server) (*Session, *FileTokenStore) {
	t.Helper()
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	return NewSession(server.URL, server.Client(), store), store
}

func loggedIn(t *testing.T, server *httptest.Server) (*Session, *FileTokenStore) {
	t.Helper()
	s, store := newTestSession(t, server)
	_, err := s.Login(context.Background(), "ada@example.com", "secret1")
	require.NoError(t, err)
	return s, store
}

func TestSession_Login(t *testing.T) {
	t.Parallel()
	backend, server := newFakeBackend(t)
	backend.with(func() { backend.watchlist = []entity.WatchlistEntry{matrix} })

	s, store := newTestSession(t, server)
	profile, err := s.Login(context.Background(), "ada@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "Ada", profile.Name)
	assert.True(t, s.LoggedIn())
	assert.Equal(t, []entity.WatchlistEntry{matrix}, s.Watchlist())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, validToken, token)
}

func TestSession_LoginRejected(t *testing.T) {
	t.Parallel()
	_, server := newFakeBackend(t)

	s, store := newTestSession(t, server)
	_, err := s.Login(context.Background(), "ada@example.com", "wrong")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, s.LoggedIn())
	token, _ := store.Load()
	assert.Empty(t, token)
}

func TestSession_RegisterDoesNotLogIn(t *testing.T) {
	t.Parallel()
	_, server := newFakeBackend(t)

	s, store := newTestSession(t, server)
	profile, err := s.Register(context.Background(), "Grace", "grace@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "Grace", profile.Name)
	assert.False(t, s.LoggedIn())
	token, _ := store.Load()
	assert.Empty(t, token)
}

func TestSession_Restore(t *testing.T) {
	t.Parallel()

	t.Run("nothing stored", func(t *testing.T) {
		_, server := newFakeBackend(t)
		s, _ := newTestSession(t, server)

		ok, err := s.Restore(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("valid token", func(t *testing.T) {
		backend, server := newFakeBackend(t)
		backend.with(func() { backend.watchlist = []entity.WatchlistEntry{matrix} })
		s, store := newTestSession(t, server)
		require.NoError(t, store.Save(validToken))

		ok, err := s.Restore(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "ada@example.com", s.Profile().Email)
		assert.True(t, s.InWatchlist(matrix))
	})

	t.Run("rejected token is cleared", func(t *testing.T) {
		_, server := newFakeBackend(t)
		s, store := newTestSession(t, server)
		require.NoError(t, store.Save("expired-token"))

		ok, err := s.Restore(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, s.Profile())
		token, _ := store.Load()
		assert.Empty(t, token)
	})
}

func TestSession_Logout(t *testing.T) {
	t.Parallel()
	_, server := newFakeBackend(t)
	s, store := loggedIn(t, server)

	require.NoError(t, s.Logout())

	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Watchlist())
	token, _ := store.Load()
	assert.Empty(t, token)
	assert.ErrorIs(t, s.AddToWatchlist(context.Background(), matrix), ErrNotLoggedIn)
}

func TestSession_AddToWatchlist(t *testing.T) {
	t.Parallel()

	t.Run("success takes the server list", func(t *testing.T) {
		backend, server := newFakeBackend(t)
		s, _ := loggedIn(t, server)

		require.NoError(t, s.AddToWatchlist(context.Background(), matrix))

		assert.Equal(t, []entity.WatchlistEntry{matrix}, s.Watchlist())
		backend.with(func() { assert.Equal(t, backend.watchlist, s.Watchlist()) })
	})

	t.Run("duplicate is not an error", func(t *testing.T) {
		backend, server := newFakeBackend(t)
		s, _ := loggedIn(t, server)
		// The server already has the entry but the local copy does not.
		backend.with(func() { backend.watchlist = []entity.WatchlistEntry{matrix} })

		require.NoError(t, s.AddToWatchlist(context.Background(), matrix))
		assert.True(t, s.InWatchlist(matrix))
	})

	t.Run("failure rolls back", func(t *testing.T) {
		backend, server := newFakeBackend(t)
		s, _ := loggedIn(t, server)
		backend.with(func() { backend.failWatchlist = http.StatusInternalServerError })

		err := s.AddToWatchlist(context.Background(), matrix)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.False(t, s.InWatchlist(matrix))
		assert.True(t, s.LoggedIn())
	})
}

func TestSession_RemoveFromWatchlist(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		backend, server := newFakeBackend(t)
		backend.with(func() { backend.watchlist = []entity.WatchlistEntry{matrix} })
		s, _ := loggedIn(t, server)

		require.NoError(t, s.RemoveFromWatchlist(context.Background(), matrix))
		assert.Empty(t, s.Watchlist())
		assert.NotNil(t, s.Watchlist())
	})

	t.Run("failure restores the entry", func(t *testing.T) {
		backend, server := newFakeBackend(t)
		backend.with(func() { backend.watchlist = []entity.WatchlistEntry{matrix} })
		s, _ := loggedIn(t, server)
		backend.with(func() { backend.failWatchlist = http.StatusBadGateway })

		require.Error(t, s.RemoveFromWatchlist(context.Background(), matrix))
		assert.True(t, s.InWatchlist(matrix))
	})
}

func TestSession_UnauthorizedInvalidates(t *testing.T) {
	t.Parallel()
	backend, server := newFakeBackend(t)
	s, store := loggedIn(t, server)
	backend.with(func() { backend.failWatchlist = http.StatusUnauthorized })

	err := s.AddToWatchlist(context.Background(), matrix)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, s.LoggedIn())
	token, _ := store.Load()
	assert.Empty(t, token)
}

func TestSession_UpdateProfile(t *testing.T) {
	t.Parallel()
	_, server := newFakeBackend(t)
	s, _ := loggedIn(t, server)

	profile, err := s.UpdateProfile(context.Background(), "Ada L", "")
	require.NoError(t, err)

	assert.Equal(t, "Ada L", profile.Name)
	assert.Equal(t, entity.DefaultAvatar, profile.Avatar)
	assert.Equal(t, "Ada L", s.Profile().Name)
}

func TestSession_ChangePassword(t *testing.T) {
	t.Parallel()
	backend, server := newFakeBackend(t)
	s, _ := loggedIn(t, server)

	err := s.ChangePassword(context.Background(), "wrong1", "secret2")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, s.LoggedIn(), "a wrong current password must not end the session")

	require.NoError(t, s.ChangePassword(context.Background(), "secret1", "secret2"))
	backend.with(func() { assert.Equal(t, "secret2", backend.password) })
}
