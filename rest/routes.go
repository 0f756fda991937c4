package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newslens/config"
	"newslens/di"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID middleware first so every log line can be correlated
	e.Use(middleware.RequestID())

	// 2. Recovery middleware early to catch panics
	e.Use(middleware.Recover())

	// 3. CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Authorization"},
		MaxAge:       86400,
	}))

	// 4. Request timeout, skipped for scrape endpoints
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.WriteTimeout,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/metrics")
		},
	}))

	// 5. Compression middleware last
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health") ||
				strings.Contains(c.Path(), "/metrics")
		},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", healthHandler)

	registerContentRoutes(v1, container)
}

func healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
