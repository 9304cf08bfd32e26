package dto

import "flexxit_backend/internal/feature/auth/domain/entity"

// ProfileRes is the public view of a user. The password hash is never included.
type ProfileRes struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// SessionRes is returned by register and login.
type SessionRes struct {
	ProfileRes
	Token string `json:"token"`
}

// NewProfileRes builds the public profile of u.
func NewProfileRes(u *entity.User) ProfileRes {
	return ProfileRes{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
	}
}
