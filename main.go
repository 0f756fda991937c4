package main

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"

	"newslens/config"
	"newslens/di"
	"newslens/job"
	"newslens/rest"
	"newslens/utils/logger"
)

func main() {
	log := logger.InitLogger()
	log.Info("Starting server")

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		panic(err)
	}

	feedURLs, err := config.LoadFeedURLs(cfg.Ingest.FeedsFile)
	if err != nil {
		log.Error("Failed to load feed list", "error", err)
		panic(err)
	}

	container := di.NewApplicationComponents(cfg, feedURLs)

	if cfg.Ingest.JobEnabled {
		runner := job.NewIngestRunner(container.IngestUsecase, cfg.Ingest.Interval)
		go runner.Run(context.Background())
	}

	e := echo.New()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Logger.Error("Error starting server", "error", err)
		panic(err)
	}
}
