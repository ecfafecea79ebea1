// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"urenregistratie/internal/api"
	"urenregistratie/internal/cache"
	"urenregistratie/internal/database"
	"urenregistratie/internal/logger"

	"github.com/labstack/echo/v4"
)

const pingKey = "health:ping"

// PingHandler reports whether Postgres and Redis are reachable.
// @Summary     Health check
// @Description Pings the database and writes a short-lived key to the cache
// @Tags        health
// @Produce     json
// @Success     200 {object} api.PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqCtx := ctx.Request().Context()
		log := logger.Get()
		if err := db.Ping(reqCtx); err != nil {
			log.Warn().Err(err).Msg("database ping failed")
			return ctx.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := c.Set(reqCtx, pingKey, time.Now().Unix(), 10*time.Second).Err(); err != nil {
			log.Warn().Err(err).Msg("cache ping failed")
			return ctx.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return ctx.JSON(http.StatusOK, api.PingResponse{Status: "pong", Database: "ok", Cache: "ok"})
	}
}
