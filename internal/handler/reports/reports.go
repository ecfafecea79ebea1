// File: internal/handler/reports/reports.go
package reports

import (
	"bytes"
	"fmt"
	"net/http"

	"urenregistratie/internal/api"
	"urenregistratie/internal/database"
	"urenregistratie/internal/middleware"
	"urenregistratie/internal/model"
	"urenregistratie/internal/report"
	"urenregistratie/internal/service"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	buildReport = service.BuildReport
	writeXLSX   = report.WriteXLSX
)

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

func load(c echo.Context, db database.DB) (*service.Report, error) {
	actor, err := middleware.Actor(c)
	if err != nil {
		return nil, err
	}
	f, err := bindFilter(c)
	if err != nil {
		return nil, err
	}
	return buildReport(c.Request().Context(), db, actor, f)
}

func respond(c echo.Context, period string, points []report.Point, total float64) error {
	return c.JSON(http.StatusOK, api.ReportResponse{
		Period:       period,
		Series:       points,
		Chart:        report.ToChart(points),
		Total:        total,
		TotalDisplay: report.FormatHours(total),
	})
}

// WeeklyHandler reports hours per ISO week.
// @Summary     Hours per ISO week
// @Description Newest week first. Admins see all users unless user_id is given
// @Tags        reports
// @Produce     json
// @Param       project query string false "Exact project name"
// @Param       from    query string false "First date (YYYY-MM-DD)"
// @Param       to      query string false "Last date (YYYY-MM-DD)"
// @Param       user_id query int    false "Owner (admins only)"
// @Success     200 {object} api.ReportResponse
// @Failure     400 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reports/weekly [get]
func WeeklyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		r, err := load(c, db)
		if err != nil {
			return err
		}
		return respond(c, "weekly", report.WeeklySeries(r.Weekly), r.Total)
	}
}

// MonthlyHandler reports hours per month.
// @Summary     Hours per month
// @Description Newest month first. Admins see all users unless user_id is given
// @Tags        reports
// @Produce     json
// @Param       project query string false "Exact project name"
// @Param       from    query string false "First date (YYYY-MM-DD)"
// @Param       to      query string false "Last date (YYYY-MM-DD)"
// @Param       user_id query int    false "Owner (admins only)"
// @Success     200 {object} api.ReportResponse
// @Failure     400 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reports/monthly [get]
func MonthlyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		r, err := load(c, db)
		if err != nil {
			return err
		}
		return respond(c, "monthly", report.MonthlySeries(r.Monthly), r.Total)
	}
}

// ExportHandler streams both series as an xlsx workbook.
// @Summary     Export weekly and monthly totals as a spreadsheet
// @Tags        reports
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       project query string false "Exact project name"
// @Param       from    query string false "First date (YYYY-MM-DD)"
// @Param       to      query string false "Last date (YYYY-MM-DD)"
// @Param       user_id query int    false "Owner"
// @Success     200 {file} file
// @Failure     403 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reports/export.xlsx [get]
func ExportHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		r, err := load(c, db)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := writeXLSX(&buf, report.WeeklySeries(r.Weekly), report.MonthlySeries(r.Monthly)); err != nil {
			return fmt.Errorf("ExportHandler: %w", err)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="urenregistratie.xlsx"`)
		return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}
