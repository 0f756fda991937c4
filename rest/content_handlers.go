package rest

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"newslens/di"
	"newslens/utils/logger"
)

func registerContentRoutes(g *echo.Group, container *di.ApplicationComponents) {
	content := g.Group("/content")

	content.GET("/feed", feedHandler(container))
	content.POST("/refresh", refreshHandler(container))
	content.POST("/analyze", analyzeHandler(container))
	content.GET("/trending", trendingHandler(container))
	content.GET("/insights", insightsHandler(container))
	content.GET("/daily-brief", dailyBriefHandler(container))
}

// feedHandler returns every stored article. An empty store is filled
// synchronously; otherwise a refresh runs in the background so the response
// stays fast.
func feedHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		if container.ArticleStore.Count() == 0 {
			if _, err := container.IngestUsecase.Execute(c.Request().Context()); err != nil {
				return handleError(c, err, "feed")
			}
		} else {
			go func() {
				if _, err := container.IngestUsecase.Execute(context.Background()); err != nil {
					logger.Logger.Error("background refresh failed", "error", err)
				}
			}()
		}

		return c.JSON(http.StatusOK, container.ArticleStore.List())
	}
}

func refreshHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		newCount, err := container.IngestUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "refresh")
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":  "Refreshed",
			"count":    container.ArticleStore.Count(),
			"newCount": newCount,
		})
	}
}

type analyzeRequest struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
}

func analyzeHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req analyzeRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if req.ID == "" {
			return badRequest(c, "article id is required")
		}

		pref := resolveProviderPreference(c, req.Provider)

		ctx := context.WithValue(c.Request().Context(),
			logger.RequestIDKey, c.Response().Header().Get(echo.HeaderXRequestID))

		article, err := container.AnalyzeUsecase.Execute(ctx, req.ID, pref)
		if err != nil {
			return handleError(c, err, "analyze")
		}

		return c.JSON(http.StatusOK, article)
	}
}

func trendingHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		trends := container.TrendingUsecase.Execute(c.Request().Context())
		return c.JSON(http.StatusOK, map[string]interface{}{"trends": trends})
	}
}

func insightsHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		insights := container.InsightsUsecase.Execute(c.Request().Context())
		return c.JSON(http.StatusOK, insights)
	}
}

func dailyBriefHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		brief := container.DailyBriefUsecase.Execute(c.Request().Context())
		return c.JSON(http.StatusOK, brief)
	}
}
