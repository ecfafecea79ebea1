// File: internal/api/change_role_request.go
package api

// swagger:model api.ChangeRoleRequest
type ChangeRoleRequest struct {
	Role string `form:"role" json:"role" validate:"required,oneof=user admin" example:"admin"`
}
