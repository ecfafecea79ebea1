// File: internal/api/user_response.go
package api

import (
	"time"

	"urenregistratie/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID          int       `json:"id" example:"1"`
	FirstName   string    `json:"first_name" example:"Ada"`
	LastName    string    `json:"last_name" example:"Lovelace"`
	Email       string    `json:"email" example:"ada@example.com"`
	Role        string    `json:"role" example:"user"`
	HourlyRate  *float64  `json:"hourly_rate,omitempty" example:"42.50"`
	LastProject *string   `json:"last_project,omitempty" example:"Alpha"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse maps a user without the password hash.
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Role:        string(u.Role),
		HourlyRate:  u.HourlyRate,
		LastProject: u.LastProject,
		CreatedAt:   u.CreatedAt,
	}
}

// swagger:model api.UserTotalResponse
type UserTotalResponse struct {
	UserResponse
	TotalHours   float64 `json:"total_hours" example:"15.5"`
	TotalDisplay string  `json:"total_display" example:"15.50"`
}
