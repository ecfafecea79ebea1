// File: internal/api/delete_user_response.go
package api

// swagger:model api.DeleteUserResponse
type DeleteUserResponse struct {
	UserID         int   `json:"user_id" example:"7"`
	DeletedEntries int64 `json:"deleted_entries" example:"3"`
}
