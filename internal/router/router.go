// File: internal/router/router.go
package router

import (
	"urenregistratie/internal/cache"
	"urenregistratie/internal/database"
	"urenregistratie/internal/handler"
	"urenregistratie/internal/handler/auth"
	"urenregistratie/internal/handler/entries"
	"urenregistratie/internal/handler/reports"
	"urenregistratie/internal/handler/users"
	"urenregistratie/internal/middleware"
	"urenregistratie/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Setup registers every route and its middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, tokens service.TokenConfig) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.GET("/ping", handler.PingHandler(db, rdb))

	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db, rdb, tokens))
	api.POST("/auth/refresh", auth.RefreshHandler(db, rdb, tokens))
	api.POST("/auth/logout", auth.LogoutHandler(rdb))

	requireAuth := middleware.RequireAuth(db, tokens.Secret)

	apiUsersMe := api.Group("/users/me", requireAuth)
	apiUsersMe.GET("", users.GetMeHandler(db))
	apiUsersMe.PUT("", users.UpdateMeHandler(db))

	// Admin only
	apiUsers := api.Group("/users", requireAuth, middleware.RequireAdmin)
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.PATCH("/:user_id/role", users.ChangeRoleHandler(db))
	apiUsers.DELETE("/:user_id", users.DeleteUserHandler(db))

	apiEntries := api.Group("/entries", requireAuth)
	apiEntries.POST("", entries.CreateEntryHandler(db))
	apiEntries.GET("", entries.ListEntriesHandler(db))
	apiEntries.GET("/:entry_id", entries.GetEntryHandler(db))
	apiEntries.PUT("/:entry_id", entries.UpdateEntryHandler(db))
	apiEntries.DELETE("/:entry_id", entries.DeleteEntryHandler(db))

	api.GET("/projects", entries.ProjectsHandler(db), requireAuth)

	apiReports := api.Group("/reports", requireAuth)
	apiReports.GET("/weekly", reports.WeeklyHandler(db))
	apiReports.GET("/monthly", reports.MonthlyHandler(db))
	apiReports.GET("/export.xlsx", reports.ExportHandler(db), middleware.RequireAdmin)
}
