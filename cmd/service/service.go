// File: cmd/service/service.go
// @title        Urenregistratie API
// @version      1.0
// @description  Time tracking: employees log worked hours, administrators manage users and review reports.
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"urenregistratie/internal/cache"
	"urenregistratie/internal/config"
	"urenregistratie/internal/database"
	"urenregistratie/internal/handler"
	"urenregistratie/internal/logger"
	"urenregistratie/internal/metrics"
	"urenregistratie/internal/router"
	"urenregistratie/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	_ "urenregistratie/docs"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

// requestLogger writes one zerolog line per request and records its latency.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			metrics.HTTPRequestDuration.
				WithLabelValues(v.Method, v.RoutePath, strconv.Itoa(v.Status)).
				Observe(v.Latency.Seconds())

			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

func newServer(log zerolog.Logger, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = !cfg.IsProduction()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(log)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	return e
}

func run() error {
	ctx := context.Background()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	e := newServer(log, cfg)
	router.Setup(e, db, rdb, service.TokenConfig{
		Secret:     cfg.Auth.JWTSecret,
		AccessTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTTL: cfg.Auth.RefreshTokenTTL,
	})

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	return startServer(e, ":"+cfg.Port)
}

func main() {
	if err := run(); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("service stopped")
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
