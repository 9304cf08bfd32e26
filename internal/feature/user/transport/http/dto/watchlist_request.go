// Package dto defines data transfer objects for the user feature's HTTP transport layer.
package dto

import (
	"encoding/json"
	"errors"
	"strings"

	"flexxit_backend/internal/feature/auth/domain/entity"
)

// ItemID is a catalog item id. Clients send it either as a JSON string or a JSON number;
// it is always stored as a string.
type ItemID string

// UnmarshalJSON accepts "603" and 603 alike.
func (id *ItemID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ItemID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("id must be a string or a number")
	}
	*id = ItemID(n.String())
	return nil
}

// WatchlistReq represents the request body for /api/user/watchlist/add and /remove.
type WatchlistReq struct {
	ID        ItemID           `json:"id" binding:"required"`
	MediaType entity.MediaType `json:"mediaType" binding:"required,oneof=movie tv"`
}

// Entry converts the request into a watchlist entry.
func (r WatchlistReq) Entry() entity.WatchlistEntry {
	return entity.WatchlistEntry{ID: string(r.ID), MediaType: r.MediaType}
}
