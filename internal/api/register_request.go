// File: internal/api/register_request.go
package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	FirstName string `form:"first_name" json:"first_name" validate:"required,max=100" example:"Ada"`
	LastName  string `form:"last_name" json:"last_name" validate:"required,max=100" example:"Lovelace"`
	Email     string `form:"email" json:"email" validate:"required,email" example:"ada@example.com"`
	Password  string `form:"password" json:"password" validate:"required,min=8" example:"Secret123!"`
}
