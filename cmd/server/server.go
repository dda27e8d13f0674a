package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"opal-server/internal/config"
	"opal-server/internal/infrastructure/logger"
	"opal-server/internal/infrastructure/observability"
	"opal-server/internal/interfaces/httpserver"
)

type Application struct {
	httpServer *httpserver.HTTPServer
	config     *config.Config
}

func init() {
	logger.GetLogger()
	config.Load()
}

func (application *Application) Start() {
	var eg errgroup.Group
	eg.Go(func() error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		return http.ListenAndServe(fmt.Sprintf(":%d", application.config.MetricsPort), mux)
	})
	eg.Go(func() error {
		return application.httpServer.Run()
	})

	if err := eg.Wait(); err != nil {
		panic(err)
	}
}

func main() {
	ctx := context.Background()
	log := logger.GetLogger()

	cfg := config.GetGlobal()
	if cfg == nil {
		log.Fatal().Msg("config not loaded")
	}

	application, err := CreateApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	otelShutdown, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	application.Start()
}
