// File: internal/api/entry_response.go
package api

import (
	"time"

	"urenregistratie/internal/model"
	"urenregistratie/internal/report"
)

// swagger:model api.EntryResponse
type EntryResponse struct {
	ID           int       `json:"id" example:"11"`
	UserID       int       `json:"user_id" example:"3"`
	Date         string    `json:"date" example:"2024-03-04"`
	StartTime    string    `json:"start_time" example:"09:00"`
	EndTime      string    `json:"end_time" example:"17:00"`
	BreakMinutes int       `json:"break_minutes" example:"30"`
	Description  *string   `json:"description,omitempty" example:"Sprint review"`
	Project      *string   `json:"project,omitempty" example:"Alpha"`
	Hours        float64   `json:"hours" example:"7.5"`
	HoursDisplay string    `json:"hours_display" example:"7.50"`
	CreatedAt    time.Time `json:"created_at" example:"2024-03-04T18:00:00Z"`
}

// NewEntryResponse maps an entry, adding its computed duration.
func NewEntryResponse(e model.TimeEntry) EntryResponse {
	h := e.Hours()
	return EntryResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		Date:         e.Date.Format(model.DateLayout),
		StartTime:    e.StartTime.String(),
		EndTime:      e.EndTime.String(),
		BreakMinutes: e.BreakMinutes,
		Description:  e.Description,
		Project:      e.Project,
		Hours:        h,
		HoursDisplay: report.FormatHours(h),
		CreatedAt:    e.CreatedAt,
	}
}

// NewEntryResponses maps a list of entries; an empty list stays a JSON array.
func NewEntryResponses(entries []model.TimeEntry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewEntryResponse(e))
	}
	return out
}
