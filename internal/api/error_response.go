// File: internal/api/error_response.go
package api

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"invalid form data"`
	Field   string `json:"field,omitempty" example:"end_time"`
}
