// Package dto holds the TMDB response envelopes that wrap catalog entities.
package dto

import "flexxit_backend/internal/feature/catalog/domain/entity"

// PageResponse is the paginated list envelope used by list, discover and search endpoints.
type PageResponse struct {
	Page         int                  `json:"page"`
	Results      []entity.CatalogItem `json:"results"`
	TotalPages   int                  `json:"total_pages"`
	TotalResults int                  `json:"total_results"`
}

// VideosResponse is returned by /{type}/{id}/videos.
type VideosResponse struct {
	ID      int            `json:"id"`
	Results []entity.Video `json:"results"`
}

// GenresResponse is returned by /genre/movie/list.
type GenresResponse struct {
	Genres []entity.Genre `json:"genres"`
}

// ErrorResponse is the body TMDB sends with 4xx/5xx statuses.
type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
