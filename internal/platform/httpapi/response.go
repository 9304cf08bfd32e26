// Package httpapi holds the JSON envelopes shared by every HTTP handler.
package httpapi

import "github.com/gin-gonic/gin"

// ErrorResponse is the body of every 4xx/5xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is returned by endpoints that only acknowledge an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// Abort writes an ErrorResponse with the given status and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
