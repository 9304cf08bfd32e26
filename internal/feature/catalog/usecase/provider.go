// Package usecase implements the catalog operations on top of the metadata provider.
package usecase

import (
	"context"

	"flexxit_backend/internal/feature/catalog/domain/entity"
)

// Provider abstracts the upstream metadata API.
// Every failure is returned as a *domain.UpstreamError.
type Provider interface {
	Trending(ctx context.Context) ([]entity.CatalogItem, error)
	TopRatedMovies(ctx context.Context) ([]entity.CatalogItem, error)
	PopularTV(ctx context.Context) ([]entity.CatalogItem, error)
	Discover(ctx context.Context, mediaType entity.MediaType, q entity.DiscoverQuery) ([]entity.CatalogItem, error)

	Details(ctx context.Context, mediaType entity.MediaType, id string) (*entity.MediaDetails, error)
	Videos(ctx context.Context, mediaType entity.MediaType, id string) ([]entity.Video, error)
	Similar(ctx context.Context, mediaType entity.MediaType, id string) ([]entity.CatalogItem, error)
	Season(ctx context.Context, tvID string, seasonNumber int) (*entity.Season, error)

	SearchMulti(ctx context.Context, query string) ([]entity.CatalogItem, error)
	MovieGenres(ctx context.Context) ([]entity.Genre, error)
}
