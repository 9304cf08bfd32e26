// Package handler provides the HTTP handlers for the catalog feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"flexxit_backend/internal/feature/catalog/domain"
	"flexxit_backend/internal/feature/catalog/domain/entity"
	"flexxit_backend/internal/platform/httpapi"
)

// CatalogUsecase defines the catalog operations used by the handler.
type CatalogUsecase interface {
	Browse(ctx context.Context) (*entity.BrowseResult, error)
	MediaDetails(ctx context.Context, mediaType, id string) (*entity.MediaDetailsResult, error)
	SeasonDetails(ctx context.Context, tvID, seasonNumber string) (*entity.Season, error)
	Search(ctx context.Context, term string) ([]entity.CatalogItem, error)
	Genres(ctx context.Context) ([]entity.Genre, error)
	MoviesByGenre(ctx context.Context, genreID, sortBy, year string) ([]entity.CatalogItem, error)
}

// CatalogHandler serves /api/content. No route requires authentication.
type CatalogHandler struct {
	catalog CatalogUsecase
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Browse handles GET /api/content/browse.
func (h *CatalogHandler) Browse(c *gin.Context) {
	result, err := h.catalog.Browse(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// MediaDetails handles GET /api/content/media/:mediaType/:id.
func (h *CatalogHandler) MediaDetails(c *gin.Context) {
	result, err := h.catalog.MediaDetails(c.Request.Context(), c.Param("mediaType"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SeasonDetails handles GET /api/content/tv/:tvId/season/:seasonNumber.
func (h *CatalogHandler) SeasonDetails(c *gin.Context) {
	season, err := h.catalog.SeasonDetails(c.Request.Context(), c.Param("tvId"), c.Param("seasonNumber"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, season)
}

// Search handles GET /api/content/search?term=.
func (h *CatalogHandler) Search(c *gin.Context) {
	results, err := h.catalog.Search(c.Request.Context(), c.Query("term"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// Genres handles GET /api/content/genres.
func (h *CatalogHandler) Genres(c *gin.Context) {
	genres, err := h.catalog.Genres(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

// MoviesByGenre handles GET /api/content/genre/:genreId?sortBy=&year=.
func (h *CatalogHandler) MoviesByGenre(c *gin.Context) {
	items, err := h.catalog.MoviesByGenre(c.Request.Context(), c.Param("genreId"), c.Query("sortBy"), c.Query("year"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// writeError maps catalog errors to HTTP responses.
// - 400 for invalid queries
// - 404 when the provider has no such item
// - 502 for any other provider failure
func writeError(c *gin.Context, err error) {
	var upErr *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httpapi.Abort(c, http.StatusNotFound, "Not found")
	case errors.As(err, &upErr):
		slog.Error("upstream request failed", "endpoint", upErr.Endpoint, "status", upErr.StatusCode, "error", upErr.Err)
		httpapi.Abort(c, http.StatusBadGateway, "Upstream provider error")
	default:
		slog.Error("catalog request failed", "error", err, "path", c.FullPath())
		httpapi.Abort(c, http.StatusInternalServerError, "Server Error")
	}
}
