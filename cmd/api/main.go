package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/chucksbakes/chucks-bakes-backend/api/routes"
	"github.com/chucksbakes/chucks-bakes-backend/internal/content"
	"github.com/chucksbakes/chucks-bakes-backend/internal/ledger"
	"github.com/chucksbakes/chucks-bakes-backend/internal/sink"
	"github.com/chucksbakes/chucks-bakes-backend/internal/submit"
	"github.com/chucksbakes/chucks-bakes-backend/internal/wizard"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/config"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/db"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/metrics"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/migrate"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient, &ledger.OrderRow{}); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	orderMetrics := metrics.NewOrderMetrics(registry)

	wizardService := wizard.NewService(wizard.NewRedisRepository(redisClient, cfg.Wizard.SessionTTL), logg)
	sinkService := sink.NewService(cfg.Sink, sink.NewClient(cfg.Sink), logg, orderMetrics)
	orchestrator := submit.NewOrchestrator(sinkService, cfg.Submit.InterItemDelay, logg)
	ledgerRepo := ledger.NewRepository(dbClient.DB())
	ledgerService := ledger.NewService(cfg.Ledger, ledgerRepo, logg)
	contentService := content.NewService(cfg.Content, redisClient, logg)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			wizardService,
			sinkService,
			orchestrator,
			ledgerService,
			ledgerRepo,
			contentService,
			registry,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
