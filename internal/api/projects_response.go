// File: internal/api/projects_response.go
package api

// swagger:model api.ProjectsResponse
type ProjectsResponse struct {
	Projects    []string `json:"projects" example:"Alpha,Beta"`
	Recent      []string `json:"recent" example:"Alpha"`
	LastProject *string  `json:"last_project,omitempty" example:"Alpha"`
}
