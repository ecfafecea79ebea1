// File: internal/handler/entries/entries.go
package entries

import (
	"net/http"
	"strconv"
	"time"

	"urenregistratie/internal/api"
	"urenregistratie/internal/database"
	"urenregistratie/internal/middleware"
	"urenregistratie/internal/model"
	"urenregistratie/internal/service"
	"urenregistratie/internal/worktime"

	"github.com/labstack/echo/v4"
)

var (
	createEntry = service.CreateEntry
	getEntry    = service.GetEntry
	updateEntry = service.UpdateEntry
	deleteEntry = service.DeleteEntry
	listEntries = service.ListEntries
	projects    = service.Projects
)

func entryID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("entry_id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid entry ID")
	}
	return id, nil
}

// toInput turns the raw form values into a service input. Malformed values
// surface as validation errors on the offending field.
func toInput(req api.EntryRequest) (service.EntryInput, error) {
	date, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		return service.EntryInput{}, model.NewValidationError("date", "date must be formatted as YYYY-MM-DD")
	}
	start, err := worktime.ParseClock(req.StartTime)
	if err != nil {
		return service.EntryInput{}, model.NewValidationError("start_time", "start time must be formatted as HH:MM")
	}
	end, err := worktime.ParseClock(req.EndTime)
	if err != nil {
		return service.EntryInput{}, model.NewValidationError("end_time", "end time must be formatted as HH:MM")
	}
	breakMinutes := 0
	if req.BreakMinutes != "" {
		if breakMinutes, err = strconv.Atoi(req.BreakMinutes.String()); err != nil {
			return service.EntryInput{}, model.NewValidationError("break_minutes", "break minutes must be a whole number")
		}
	}
	return service.EntryInput{
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		BreakMinutes: breakMinutes,
		Description:  &req.Description,
		Project:      &req.Project,
	}, nil
}

func bindEntry(c echo.Context) (service.EntryInput, error) {
	var req api.EntryRequest
	if err := c.Bind(&req); err != nil {
		return service.EntryInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&req); err != nil {
		return service.EntryInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return toInput(req)
}

func bindFilter(c echo.Context) (model.EntryFilter, error) {
	var q api.EntryQuery
	if err := c.Bind(&q); err != nil {
		return model.EntryFilter{}, echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return model.EntryFilter{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return q.Filter()
}

// CreateEntryHandler logs hours for the caller.
// @Summary     Log hours
// @Description Creates an entry for the caller; the project becomes their last used project
// @Tags        entries
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       date          formData string true  "Date (YYYY-MM-DD)"
// @Param       start_time    formData string true  "Start time (HH:MM)"
// @Param       end_time      formData string true  "End time (HH:MM)"
// @Param       break_minutes formData int    false "Break in minutes"
// @Param       description   formData string false "Description"
// @Param       project       formData string false "Project"
// @Success     201 {object} api.EntryResponse
// @Failure     400 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /entries [post]
func CreateEntryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := middleware.Actor(c)
		if err != nil {
			return err
		}
		in, err := bindEntry(c)
		if err != nil {
			return err
		}
		e, err := createEntry(c.Request().Context(), db, actor, in)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, api.NewEntryResponse(*e))
	}
}

// ListEntriesHandler lists entries matching the query filter.
// @Summary     List entries
// @Description Own entries; admins see everyone's unless user_id is given
// @Tags        entries
// @Produce     json
// @Param       project query string false "Exact project name"
// @Param       from    query string false "First date (YYYY-MM-DD)"
// @Param       to      query string false "Last date (YYYY-MM-DD)"
// @Param       user_id query int    false "Owner (admins only)"
// @Success     200 {array}  api.EntryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /entries [get]
func ListEntriesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := middleware.Actor(c)
		if err != nil {
			return err
		}
		f, err := bindFilter(c)
		if err != nil {
			return err
		}
		list, err := listEntries(c.Request().Context(), db, actor, f)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewEntryResponses(list))
	}
}

// GetEntryHandler returns a single entry.
// @Summary     Get an entry
// @Tags        entries
// @Produce     json
// @Param       entry_id path int true "Entry ID"
// @Success     200 {object} api.EntryResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /entries/{entry_id} [get]
func GetEntryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := middleware.Actor(c)
		if err != nil {
			return err
		}
		id, err := entryID(c)
		if err != nil {
			return err
		}
		e, err := getEntry(c.Request().Context(), db, actor, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewEntryResponse(*e))
	}
}

// UpdateEntryHandler replaces the editable fields of an entry.
// @Summary     Update an entry
// @Tags        entries
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       entry_id      path     int    true  "Entry ID"
// @Param       date          formData string true  "Date (YYYY-MM-DD)"
// @Param       start_time    formData string true  "Start time (HH:MM)"
// @Param       end_time      formData string true  "End time (HH:MM)"
// @Param       break_minutes formData int    false "Break in minutes"
// @Param       description   formData string false "Description"
// @Param       project       formData string false "Project"
// @Success     200 {object} api.EntryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /entries/{entry_id} [put]
func UpdateEntryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := middleware.Actor(c)
		if err != nil {
			return err
		}
		id, err := entryID(c)
		if err != nil {
			return err
		}
		in, err := bindEntry(c)
		if err != nil {
			return err
		}
		e, err := updateEntry(c.Request().Context(), db, actor, id, in)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewEntryResponse(*e))
	}
}

// DeleteEntryHandler removes an entry.
// @Summary     Delete an entry
// @Tags        entries
// @Param       entry_id path int true "Entry ID"
// @Success     204
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /entries/{entry_id} [delete]
func DeleteEntryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := middleware.Actor(c)
		if err != nil {
			return err
		}
		id, err := entryID(c)
		if err != nil {
			return err
		}
		if err := deleteEntry(c.Request().Context(), db, actor, id); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ProjectsHandler feeds the project picker.
// @Summary     Known projects
// @Description Distinct project names, the most recently used ones and the last used project
// @Tags        entries
// @Produce     json
// @Success     200 {object} api.ProjectsResponse
// @Security    ApiKeyAuth
// @Router      /projects [get]
func ProjectsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := middleware.Actor(c)
		if err != nil {
			return err
		}
		p, err := projects(c.Request().Context(), db, actor)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.ProjectsResponse{
			Projects:    p.Projects,
			Recent:      p.Recent,
			LastProject: p.Last,
		})
	}
}
