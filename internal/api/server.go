package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"tickersymbols/pkg/tickersymbols"
)

type ServerConfig struct {
	RateLimitRPS float64 // 0 disables rate limiting
	SkipPaths    []string
}

// NewServer returns an echo instance serving catalog. Requests are logged
// through logger.
func NewServer(catalog *tickersymbols.Catalog, cfg ServerConfig, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = JSONSerializer{}
	e.Logger.SetLevel(log.WARN)

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger, cfg.SkipPaths...))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if cfg.RateLimitRPS > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimitRPS))))
	}

	NewHandler(catalog).RegisterRoutes(e)
	return e
}
