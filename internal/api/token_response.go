// File: internal/api/token_response.go
package api

// swagger:model api.TokenResponse
type TokenResponse struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOi..."`
	TokenType    string `json:"token_type" example:"Bearer"`
	ExpiresIn    int64  `json:"expires_in" example:"86400"`
	RefreshToken string `json:"refresh_token,omitempty" example:"q1w2e3..."`
}
