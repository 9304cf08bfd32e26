// Package entity defines the typed envelopes returned by the catalog.
// Field names follow the metadata provider's wire format.
package entity

import (
	"time"

	authentity "flexxit_backend/internal/feature/auth/domain/entity"
)

// MediaType is shared with watchlist entries.
type MediaType = authentity.MediaType

const (
	MediaTypeMovie = authentity.MediaTypeMovie
	MediaTypeTV    = authentity.MediaTypeTV
)

// Badge values attached to browse items.
const (
	BadgeTopTen = "Top 10"
	BadgeNew    = "New"
)

const dateLayout = "2006-01-02"

// CatalogItem is a movie or TV show as listed by the provider.
// Movies carry Title and ReleaseDate; TV shows carry Name and FirstAirDate.
type CatalogItem struct {
	ID               int       `json:"id"`
	MediaType        MediaType `json:"media_type,omitempty"`
	Title            string    `json:"title,omitempty"`
	Name             string    `json:"name,omitempty"`
	OriginalLanguage string    `json:"original_language,omitempty"`
	Overview         string    `json:"overview"`
	PosterPath       string    `json:"poster_path,omitempty"`
	BackdropPath     string    `json:"backdrop_path,omitempty"`
	ReleaseDate      string    `json:"release_date,omitempty"`
	FirstAirDate     string    `json:"first_air_date,omitempty"`
	VoteAverage      float64   `json:"vote_average"`
	VoteCount        int       `json:"vote_count"`
	Popularity       float64   `json:"popularity"`
	GenreIDs         []int     `json:"genre_ids,omitempty"`
	Adult            bool      `json:"adult"`
	Badge            string    `json:"badge,omitempty"`
}

// Date returns the release or first air date. ok is false when neither parses.
func (i CatalogItem) Date() (d time.Time, ok bool) {
	raw := i.ReleaseDate
	if raw == "" {
		raw = i.FirstAirDate
	}
	d, err := time.Parse(dateLayout, raw)
	return d, err == nil
}

// Row is a titled list of items on the browse page.
type Row struct {
	Title  string        `json:"title"`
	Movies []CatalogItem `json:"movies"`
}

// BrowseResult is the browse page: rows in fixed order plus an optional hero.
type BrowseResult struct {
	Rows           []Row        `json:"rows"`
	HeroMovie      *CatalogItem `json:"heroMovie"`
	HeroTrailerKey *string      `json:"heroTrailerKey"`
}

// Genre is a provider genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DiscoverQuery narrows a discover request.
type DiscoverQuery struct {
	GenreID string
	SortBy  string
	Year    string
}
