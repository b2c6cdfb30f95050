package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	gbq "cloud.google.com/go/bigquery"
	"github.com/gofiber/fiber/v2"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	bqAdapter "analytics-query-service/internal/analytics/adapters/bigquery"
	queryHttp "analytics-query-service/internal/analytics/adapters/http/fiber"
	"analytics-query-service/internal/analytics/core/compiler"
	"analytics-query-service/internal/analytics/core/usecase"

	_ "analytics-query-service/docs"
)

type config struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	// Google Cloud project the BigQuery client bills against.
	Project string `envconfig:"PROJECT" required:"true"`
	// Fully qualified event table, e.g. proj.dataset.events_* for a
	// date-sharded export.
	Table        string `envconfig:"TABLE" required:"true"`
	Timezone     string `envconfig:"TIMEZONE" default:"UTC"`
	UserIDColumn string `envconfig:"USER_ID_COLUMN" default:"user_pseudo_id"`
}

// @title Analytics Query Service
// @version 1.0
// @description Compiles declarative event and funnel requests into BigQuery SQL and returns time-indexed matrices.
// @BasePath /
func main() {
	var cfg config
	if err := envconfig.Process("analytics", &cfg); err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	ctx := context.Background()

	client, err := gbq.NewClient(ctx, cfg.Project)
	if err != nil {
		log.WithError(err).Fatal("failed to create bigquery client")
	}
	defer client.Close()

	// Wiring
	executor := bqAdapter.NewExecutor(client)
	comp := compiler.New(cfg.Table, cfg.Timezone, cfg.UserIDColumn)

	eventsUC := usecase.NewRequestEventsUseCase(executor, comp)
	funnelUC := usecase.NewRequestFunnelUseCase(executor, comp)

	app := fiber.New()

	handler := queryHttp.NewQueryHandler(eventsUC, funnelUC)
	app.Post("/query/events", handler.QueryEvents)
	app.Post("/query/funnel", handler.QueryFunnel)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.WithError(err).Error("fiber stopped")
		}
	}()

	log.WithFields(log.Fields{
		"addr":  cfg.ListenAddr,
		"table": cfg.Table,
	}).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithError(err).Error("fiber shutdown error")
	}

	log.Info("server exiting")
}
