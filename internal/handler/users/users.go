// File: internal/handler/users/users.go
package users

import (
	"net/http"
	"strconv"

	"urenregistratie/internal/api"
	"urenregistratie/internal/database"
	"urenregistratie/internal/middleware"
	"urenregistratie/internal/report"
	"urenregistratie/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	getProfile    = service.GetProfile
	updateProfile = service.UpdateProfile
	listUsers     = service.ListUsers
	changeRole    = service.ChangeRole
	deleteUser    = service.DeleteUser
)

func userID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}
	return id, nil
}

// GetMeHandler returns the caller's profile.
// @Summary     Get my profile
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := middleware.Actor(c)
		if err != nil {
			return err
		}
		user, err := getProfile(c.Request().Context(), db, actor)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}

// UpdateMeHandler updates the caller's name, email and optionally password.
// @Summary     Update my profile
// @Description Updates name and email; a non-empty password replaces the current one
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       first_name formData string true  "First name"
// @Param       last_name  formData string true  "Last name"
// @Param       email      formData string true  "Email"
// @Param       password   formData string false "New password (min 8)"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [put]
func UpdateMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := middleware.Actor(c)
		if err != nil {
			return err
		}
		var req api.UpdateMeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		in := service.ProfileInput{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
		if req.Password != "" {
			in.Password = &req.Password
		}
		user, err := updateProfile(c.Request().Context(), db, actor, in)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}

// ListUsersHandler lists users with their total logged hours.
// @Summary     List users with their total hours
// @Tags        users
// @Produce     json
// @Param       search query string false "Substring of first name, last name or email"
// @Success     200 {array}  api.UserTotalResponse
// @Failure     403 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := middleware.Actor(c)
		if err != nil {
			return err
		}
		totals, err := listUsers(c.Request().Context(), db, actor, c.QueryParam("search"))
		if err != nil {
			return err
		}
		out := make([]api.UserTotalResponse, 0, len(totals))
		for _, ut := range totals {
			out = append(out, api.UserTotalResponse{
				UserResponse: api.NewUserResponse(ut.User),
				TotalHours:   ut.TotalHours,
				TotalDisplay: report.FormatHours(ut.TotalHours),
			})
		}
		return c.JSON(http.StatusOK, out)
	}
}

// ChangeRoleHandler changes another user's role.
// @Summary     Change a user's role
// @Description Admins cannot change their own role
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       user_id path     int    true "User ID"
// @Param       role    formData string true "user or admin"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id}/role [patch]
func ChangeRoleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := middleware.Actor(c)
		if err != nil {
			return err
		}
		id, err := userID(c)
		if err != nil {
			return err
		}
		var req api.ChangeRoleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := changeRole(c.Request().Context(), db, actor, id, req.Role)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}

// DeleteUserHandler deletes a user together with their entries.
// @Summary     Delete a user and all of their entries
// @Description Admins cannot delete themselves
// @Tags        users
// @Produce     json
// @Param       user_id path int true "User ID"
// @Success     200 {object} api.DeleteUserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := middleware.Actor(c)
		if err != nil {
			return err
		}
		id, err := userID(c)
		if err != nil {
			return err
		}
		n, err := deleteUser(c.Request().Context(), db, actor, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.DeleteUserResponse{UserID: id, DeletedEntries: n})
	}
}
