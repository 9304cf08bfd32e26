package dto

// UpdateProfileReq represents the request body for PUT /api/user/profile.
// Empty fields leave the stored value unchanged.
type UpdateProfileReq struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ChangePasswordReq represents the request body for PUT /api/user/profile/password.
type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=72"`
}
