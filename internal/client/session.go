package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"flexxit_backend/internal/feature/auth/domain/entity"
)

// Session holds the logged-in state of one client: the token, the cached
// profile and the cached watchlist. It is safe for concurrent use.
type Session struct {
	api   *api
	store TokenStore

	mu        sync.RWMutex
	token     string
	profile   *Profile
	watchlist []entity.WatchlistEntry
}

// NewSession creates a logged-out session talking to baseURL.
func NewSession(baseURL string, httpClient *http.Client, store TokenStore) *Session {
	return &Session{api: newAPI(baseURL, httpClient), store: store}
}

// Restore rehydrates the session from the token store. It reports whether a
// session is active afterwards. A rejected token is cleared and is not an error.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	token, err := s.store.Load()
	if err != nil {
		return false, err
	}
	if token == "" {
		return false, nil
	}

	profile, err := s.api.profile(ctx, token)
	if err == nil {
		var list []entity.WatchlistEntry
		list, err = s.api.watchlist(ctx, token)
		if err == nil {
			s.set(token, profile, list)
			return true, nil
		}
	}
	if errors.Is(err, ErrUnauthorized) {
		slog.Info("stored session rejected, logging out")
		s.invalidate()
		return false, nil
	}
	return false, fmt.Errorf("failed to restore session: %w", err)
}

// Login authenticates, persists the token and loads the watchlist.
func (s *Session) Login(ctx context.Context, email, password string) (*Profile, error) {
	res, err := s.api.login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(res.Token); err != nil {
		return nil, err
	}

	list, err := s.api.watchlist(ctx, res.Token)
	if err != nil {
		s.invalidate()
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}

	profile := res.Profile
	s.set(res.Token, &profile, list)
	return &profile, nil
}

// Register creates an account. The returned token is discarded; the caller
// logs in separately.
func (s *Session) Register(ctx context.Context, name, email, password string) (*Profile, error) {
	res, err := s.api.register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	profile := res.Profile
	return &profile, nil
}

// Logout forgets the session locally. Tokens are not revocable server-side.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.token, s.profile, s.watchlist = "", nil, nil
	s.mu.Unlock()
	return s.store.Clear()
}

// LoggedIn reports whether the session holds a token.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Profile returns a copy of the cached profile, or nil when logged out.
func (s *Session) Profile() *Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Watchlist returns a copy of the cached watchlist.
func (s *Session) Watchlist() []entity.WatchlistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.watchlist)
}

// InWatchlist reports whether e is in the cached watchlist.
func (s *Session) InWatchlist(e entity.WatchlistEntry) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.watchlist, e) >= 0
}

// AddToWatchlist adds e locally, then on the server. The server's list replaces
// the local one on success; on failure the local add is undone. A duplicate
// rejection leaves the entry in place and returns nil.
func (s *Session) AddToWatchlist(ctx context.Context, e entity.WatchlistEntry) error {
	token, added, err := s.applyLocal(e, true)
	if err != nil {
		return err
	}

	list, err := s.api.mutateWatchlist(ctx, token, "add", e)
	switch {
	case err == nil:
		s.replaceWatchlist(token, list)
		return nil
	case errors.Is(err, ErrDuplicateEntry):
		return nil
	}

	if added {
		s.revert(token, e, false)
	}
	s.handleAuthError(err)
	return err
}

// RemoveFromWatchlist removes e locally, then on the server, restoring the
// entry if the server call fails.
func (s *Session) RemoveFromWatchlist(ctx context.Context, e entity.WatchlistEntry) error {
	token, removed, err := s.applyLocal(e, false)
	if err != nil {
		return err
	}

	list, err := s.api.mutateWatchlist(ctx, token, "remove", e)
	if err == nil {
		s.replaceWatchlist(token, list)
		return nil
	}

	if removed {
		s.revert(token, e, true)
	}
	s.handleAuthError(err)
	return err
}

// UpdateProfile changes the display name and/or avatar. Empty values keep the current ones.
func (s *Session) UpdateProfile(ctx context.Context, name, avatar string) (*Profile, error) {
	token, err := s.currentToken()
	if err != nil {
		return nil, err
	}
	profile, err := s.api.updateProfile(ctx, token, name, avatar)
	if err != nil {
		s.handleAuthError(err)
		return nil, err
	}

	s.mu.Lock()
	if s.token == token {
		p := *profile
		s.profile = &p
	}
	s.mu.Unlock()
	return profile, nil
}

// ChangePassword changes the password. The current token stays valid.
func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	token, err := s.currentToken()
	if err != nil {
		return err
	}
	if err := s.api.changePassword(ctx, token, current, next); err != nil {
		// A wrong current password is also a 401, but it does not mean the token is bad.
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message == "Invalid current password" {
			return err
		}
		s.handleAuthError(err)
		return err
	}
	return nil
}

func (s *Session) set(token string, profile *Profile, list []entity.WatchlistEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.profile = profile
	s.watchlist = nonNil(list)
}

func (s *Session) currentToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNotLoggedIn
	}
	return s.token, nil
}

// applyLocal performs the optimistic add or remove and reports whether the
// cached list changed.
func (s *Session) applyLocal(e entity.WatchlistEntry, add bool) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", false, ErrNotLoggedIn
	}

	i := indexOf(s.watchlist, e)
	switch {
	case add && i < 0:
		s.watchlist = append(s.watchlist, e)
		return s.token, true, nil
	case !add && i >= 0:
		s.watchlist = slices.Delete(s.watchlist, i, i+1)
		return s.token, true, nil
	}
	return s.token, false, nil
}

// revert undoes an optimistic change unless the session has changed since.
func (s *Session) revert(token string, e entity.WatchlistEntry, add bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != token {
		return
	}
	i := indexOf(s.watchlist, e)
	if add && i < 0 {
		s.watchlist = append(s.watchlist, e)
	} else if !add && i >= 0 {
		s.watchlist = slices.Delete(s.watchlist, i, i+1)
	}
}

func (s *Session) replaceWatchlist(token string, list []entity.WatchlistEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == token {
		s.watchlist = nonNil(list)
	}
}

func (s *Session) handleAuthError(err error) {
	if errors.Is(err, ErrUnauthorized) {
		slog.Info("session rejected by server, logging out")
		s.invalidate()
	}
}

func (s *Session) invalidate() {
	if err := s.Logout(); err != nil {
		slog.Warn("failed to clear stored token", "error", err)
	}
}

func indexOf(list []entity.WatchlistEntry, e entity.WatchlistEntry) int {
	return slices.IndexFunc(list, func(x entity.WatchlistEntry) bool { return x.Key() == e.Key() })
}

func nonNil(list []entity.WatchlistEntry) []entity.WatchlistEntry {
	if list == nil {
		return []entity.WatchlistEntry{}
	}
	return list
}
