// File: internal/api/entry_request.go
package api

import "encoding/json"

// swagger:model api.EntryRequest
type EntryRequest struct {
	Date         string      `form:"date" json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-04"`
	StartTime    string      `form:"start_time" json:"start_time" validate:"required" example:"09:00"`
	EndTime      string      `form:"end_time" json:"end_time" validate:"required" example:"17:00"`
	BreakMinutes json.Number `form:"break_minutes" json:"break_minutes" swaggertype:"integer" example:"30"`
	Description  string      `form:"description" json:"description" validate:"max=1000" example:"Sprint review"`
	Project      string      `form:"project" json:"project" validate:"max=100" example:"Alpha"`
}
