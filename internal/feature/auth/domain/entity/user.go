// Package entity defines the domain entities for the auth feature.
package entity

import (
	"strings"
	"time"
)

// DefaultAvatar is assigned to users who register without choosing an avatar.
const DefaultAvatar = "https://api.dicebear.com/8.x/bottts/svg?seed=Felix"

// MediaType identifies the kind of catalog item a watchlist entry refers to.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// Valid reports whether m is one of the supported media types.
func (m MediaType) Valid() bool {
	return m == MediaTypeMovie || m == MediaTypeTV
}

// WatchlistEntry is a saved reference to a catalog item.
// Only the key is stored; item metadata is fetched from the catalog on demand.
type WatchlistEntry struct {
	ID        string    `json:"id"`
	MediaType MediaType `json:"mediaType"`
}

// Key returns a stable identifier combining media type and item ID.
func (e WatchlistEntry) Key() string {
	return string(e.MediaType) + ":" + e.ID
}

// User represents a registered user in the system.
// It doubles as the credential store record and owns the user's watchlist.
type User struct {
	// ID is an opaque unique identifier (UUID).
	ID string `gorm:"primaryKey;size:36"`

	// Name is the display name.
	Name string `gorm:"size:100;not null"`

	// Email is stored lower-cased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Avatar is a URL to the user's profile image.
	Avatar string `gorm:"size:512"`

	// Watchlist is embedded in the user record as a JSON column.
	Watchlist []WatchlistEntry `gorm:"serializer:json;type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeEmail trims and lower-cases an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Entries returns a copy of the watchlist in insertion order. It never returns nil.
func (u *User) Entries() []WatchlistEntry {
	out := make([]WatchlistEntry, len(u.Watchlist))
	copy(out, u.Watchlist)
	return out
}

// HasEntry reports whether the watchlist already contains e.
func (u *User) HasEntry(e WatchlistEntry) bool {
	for _, w := range u.Watchlist {
		if w.Key() == e.Key() {
			return true
		}
	}
	return false
}

// AddEntry appends e unless it is already present. It returns false on duplicates.
func (u *User) AddEntry(e WatchlistEntry) bool {
	if u.HasEntry(e) {
		return false
	}
	u.Watchlist = append(u.Watchlist, e)
	return true
}

// RemoveEntry drops e from the watchlist and reports whether anything was removed.
func (u *User) RemoveEntry(e WatchlistEntry) bool {
	kept := make([]WatchlistEntry, 0, len(u.Watchlist))
	for _, w := range u.Watchlist {
		if w.Key() != e.Key() {
			kept = append(kept, w)
		}
	}
	removed := len(kept) != len(u.Watchlist)
	u.Watchlist = kept
	return removed
}
