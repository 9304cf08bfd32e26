// Package di provides dependency injection factories for creating application components.
package di

import (
	"flexxit_backend/internal/feature/catalog/adapters/tmdb"
	infrahttp "flexxit_backend/internal/platform/http"
)

// NewCatalogProvider creates a TMDB client configured from the environment.
func NewCatalogProvider() *tmdb.Client {
	cfg := tmdb.LoadConfig()
	return tmdb.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}
