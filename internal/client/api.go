// Package client is a Go consumer of the backend API that keeps the logged-in
// session and a local copy of the watchlist.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"flexxit_backend/internal/feature/auth/domain/entity"
)

// Profile is the public user record returned by the backend.
type Profile struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type sessionResponse struct {
	Profile
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// api performs JSON requests against the backend.
type api struct {
	baseURL string
	http    *http.Client
}

func newAPI(baseURL string, httpClient *http.Client) *api {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &api{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// do sends body as JSON and decodes a 2xx response into out.
// Non-2xx responses become *APIError.
func (a *api) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		var msg messageResponse
		_ = json.NewDecoder(res.Body).Decode(&msg)
		return &APIError{StatusCode: res.StatusCode, Message: msg.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s: %w", method, path, err)
	}
	return nil
}

func (a *api) login(ctx context.Context, email, password string) (*sessionResponse, error) {
	var res sessionResponse
	err := a.do(ctx, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	}, &res)
	return &res, err
}

func (a *api) register(ctx context.Context, name, email, password string) (*sessionResponse, error) {
	var res sessionResponse
	err := a.do(ctx, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	}, &res)
	return &res, err
}

func (a *api) profile(ctx context.Context, token string) (*Profile, error) {
	var p Profile
	err := a.do(ctx, http.MethodGet, "/api/auth/profile", token, nil, &p)
	return &p, err
}

func (a *api) watchlist(ctx context.Context, token string) ([]entity.WatchlistEntry, error) {
	var list []entity.WatchlistEntry
	err := a.do(ctx, http.MethodGet, "/api/user/watchlist", token, nil, &list)
	return list, err
}

func (a *api) mutateWatchlist(ctx context.Context, token, op string, e entity.WatchlistEntry) ([]entity.WatchlistEntry, error) {
	var list []entity.WatchlistEntry
	err := a.do(ctx, http.MethodPost, "/api/user/watchlist/"+op, token, e, &list)
	return list, err
}

func (a *api) updateProfile(ctx context.Context, token, name, avatar string) (*Profile, error) {
	var p Profile
	err := a.do(ctx, http.MethodPut, "/api/user/profile", token, map[string]string{
		"name": name, "avatar": avatar,
	}, &p)
	return &p, err
}

func (a *api) changePassword(ctx context.Context, token, current, next string) error {
	return a.do(ctx, http.MethodPut, "/api/user/profile/password", token, map[string]string{
		"currentPassword": current, "newPassword": next,
	}, nil)
}
