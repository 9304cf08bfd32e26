package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"flexxit_backend/internal/feature/catalog/adapters/tmdb/dto"
	"flexxit_backend/internal/feature/catalog/domain"
	"flexxit_backend/internal/feature/catalog/domain/entity"
	"flexxit_backend/internal/feature/catalog/usecase"
)

// Client fetches catalog data from TMDB.
type Client struct {
	cfg    Config
	client *http.Client
}

// Client must satisfy the catalog Provider.
var _ usecase.Provider = (*Client)(nil)

// NewClient creates a Client with the given config and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	return &Client{cfg: cfg, client: client}
}

// Trending returns this week's trending movies and shows.
func (c *Client) Trending(ctx context.Context) ([]entity.CatalogItem, error) {
	return c.page(ctx, "/trending/all/week", nil)
}

// TopRatedMovies returns the first page of top rated movies.
func (c *Client) TopRatedMovies(ctx context.Context) ([]entity.CatalogItem, error) {
	return c.page(ctx, "/movie/top_rated", nil)
}

// PopularTV returns the first page of popular shows.
func (c *Client) PopularTV(ctx context.Context) ([]entity.CatalogItem, error) {
	return c.page(ctx, "/tv/popular", nil)
}

// Discover lists movies or shows matching q.
func (c *Client) Discover(ctx context.Context, mediaType entity.MediaType, q entity.DiscoverQuery) ([]entity.CatalogItem, error) {
	params := url.Values{}
	if q.GenreID != "" {
		params.Set("with_genres", q.GenreID)
	}
	if q.SortBy != "" {
		params.Set("sort_by", q.SortBy)
	}
	if q.Year != "" {
		params.Set("primary_release_year", q.Year)
	}
	return c.page(ctx, "/discover/"+string(mediaType), params)
}

// Details returns the full record of a movie or show.
func (c *Client) Details(ctx context.Context, mediaType entity.MediaType, id string) (*entity.MediaDetails, error) {
	var d entity.MediaDetails
	if err := c.get(ctx, fmt.Sprintf("/%s/%s", mediaType, id), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Videos lists the clips attached to a movie or show.
func (c *Client) Videos(ctx context.Context, mediaType entity.MediaType, id string) ([]entity.Video, error) {
	var body dto.VideosResponse
	if err := c.get(ctx, fmt.Sprintf("/%s/%s/videos", mediaType, id), nil, &body); err != nil {
		return nil, err
	}
	return body.Results, nil
}

// Similar lists items similar to a movie or show.
func (c *Client) Similar(ctx context.Context, mediaType entity.MediaType, id string) ([]entity.CatalogItem, error) {
	return c.page(ctx, fmt.Sprintf("/%s/%s/similar", mediaType, id), nil)
}

// Season returns one season of a show with its episodes.
func (c *Client) Season(ctx context.Context, tvID string, seasonNumber int) (*entity.Season, error) {
	var s entity.Season
	if err := c.get(ctx, fmt.Sprintf("/tv/%s/season/%s", tvID, strconv.Itoa(seasonNumber)), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SearchMulti searches movies, shows and people at once.
func (c *Client) SearchMulti(ctx context.Context, query string) ([]entity.CatalogItem, error) {
	return c.page(ctx, "/search/multi", url.Values{"query": {query}})
}

// MovieGenres lists the movie genres.
func (c *Client) MovieGenres(ctx context.Context) ([]entity.Genre, error) {
	var body dto.GenresResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &body); err != nil {
		return nil, err
	}
	return body.Genres, nil
}

func (c *Client) page(ctx context.Context, endpoint string, params url.Values) ([]entity.CatalogItem, error) {
	var body dto.PageResponse
	if err := c.get(ctx, endpoint, params, &body); err != nil {
		return nil, err
	}
	return body.Results, nil
}

// get issues a GET against endpoint and decodes the JSON body into out.
// api_key and language are added to every request.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("api_key", c.cfg.APIKey)
	q.Set("language", c.cfg.Language)

	u := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, endpoint, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &domain.UpstreamError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		// url.Error carries the full URL, including the API key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return &domain.UpstreamError{Endpoint: endpoint, Err: err}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		var body dto.ErrorResponse
		cause := errors.New(http.StatusText(res.StatusCode))
		if json.NewDecoder(res.Body).Decode(&body) == nil && body.StatusMessage != "" {
			cause = errors.New(body.StatusMessage)
		}
		return &domain.UpstreamError{Endpoint: endpoint, StatusCode: res.StatusCode, Err: cause}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &domain.UpstreamError{Endpoint: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
