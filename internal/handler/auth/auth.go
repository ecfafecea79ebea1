// File: internal/handler/auth/auth.go
package auth

import (
	"errors"
	"net/http"

	"urenregistratie/internal/api"
	"urenregistratie/internal/cache"
	"urenregistratie/internal/database"
	"urenregistratie/internal/model"
	"urenregistratie/internal/service"
	"urenregistratie/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	register             = service.Register
	login                = service.Login
	getUserByID          = store.GetUserByID
	issueAccessToken     = service.IssueAccessToken
	issueRefreshToken    = service.IssueRefreshToken
	validateRefreshToken = service.ValidateRefreshToken
	revokeRefreshToken   = service.RevokeRefreshToken
)

// RegisterHandler creates an account with the user role.
// @Summary     Register
// @Description Creates a user account; the email is stored lowercase
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       first_name formData string true "First name"
// @Param       last_name  formData string true "Last name"
// @Param       email      formData string true "Email"
// @Param       password   formData string true "Password (min 8)"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := register(c.Request().Context(), db, service.RegisterInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(*user))
	}
}

// LoginHandler exchanges email and password for an access and a refresh token.
// @Summary     Log in
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email    formData string true "Email"
// @Param       password formData string true "Password"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, rdb cache.Cache, tokens service.TokenConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		user, err := login(ctx, db, req.Email, req.Password)
		if err != nil {
			return err
		}
		access, err := issueAccessToken(*user, tokens.Secret, tokens.AccessTTL)
		if err != nil {
			return err
		}
		refresh, err := issueRefreshToken(ctx, rdb, user.ID, tokens.RefreshTTL)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.TokenResponse{
			AccessToken:  access,
			TokenType:    "Bearer",
			ExpiresIn:    int64(tokens.AccessTTL.Seconds()),
			RefreshToken: refresh,
		})
	}
}

// RefreshHandler issues a new access token for a valid refresh token. The
// role is re-read so a changed role takes effect on the next refresh.
// @Summary     Refresh access token
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       refresh_token formData string true "Refresh token"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /auth/refresh [post]
func RefreshHandler(db database.DB, rdb cache.Cache, tokens service.TokenConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		data, err := validateRefreshToken(ctx, rdb, req.RefreshToken)
		if err != nil {
			return err
		}
		user, err := getUserByID(ctx, db, data.UserID)
		if errors.Is(err, model.ErrNotFound) {
			_ = revokeRefreshToken(ctx, rdb, req.RefreshToken)
			return service.ErrInvalidToken
		}
		if err != nil {
			return err
		}
		access, err := issueAccessToken(*user, tokens.Secret, tokens.AccessTTL)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.TokenResponse{
			AccessToken:  access,
			TokenType:    "Bearer",
			ExpiresIn:    int64(tokens.AccessTTL.Seconds()),
			RefreshToken: req.RefreshToken,
		})
	}
}

// LogoutHandler revokes a refresh token.
// @Summary     Log out
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Param       refresh_token formData string true "Refresh token"
// @Success     204
// @Failure     400 {object} api.ErrorResponse
// @Router      /auth/logout [post]
func LogoutHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if err := revokeRefreshToken(c.Request().Context(), rdb, req.RefreshToken); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}
