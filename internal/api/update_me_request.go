// File: internal/api/update_me_request.go
package api

// Password is optional; leaving it empty keeps the current one.
// swagger:model api.UpdateMeRequest
type UpdateMeRequest struct {
	FirstName string `form:"first_name" json:"first_name" validate:"required,max=100" example:"Ada"`
	LastName  string `form:"last_name" json:"last_name" validate:"required,max=100" example:"Lovelace"`
	Email     string `form:"email" json:"email" validate:"required,email" example:"ada@example.com"`
	Password  string `form:"password" json:"password" validate:"omitempty,min=8" example:"NewSecret456!"`
}
