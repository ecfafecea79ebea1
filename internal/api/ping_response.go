// File: internal/api/ping_response.go
package api

// swagger:model api.PingResponse
type PingResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
	Cache    string `json:"cache" example:"ok"`
}
