// File: internal/api/refresh_request.go
package api

// swagger:model api.RefreshRequest
type RefreshRequest struct {
	RefreshToken string `form:"refresh_token" json:"refresh_token" validate:"required" example:"q1w2e3..."`
}
