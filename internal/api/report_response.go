// File: internal/api/report_response.go
package api

import "urenregistratie/internal/report"

// swagger:model api.ReportResponse
type ReportResponse struct {
	Period       string         `json:"period" example:"weekly"`
	Series       []report.Point `json:"series"`
	Chart        report.Chart   `json:"chart"`
	Total        float64        `json:"total" example:"15.5"`
	TotalDisplay string         `json:"total_display" example:"15.50"`
}
