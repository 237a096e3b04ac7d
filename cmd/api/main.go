package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "meraki_estimator/docs"
	"meraki_estimator/internal/adapter/http/routes"
	"meraki_estimator/internal/infrastructure/config"
	"meraki_estimator/internal/infrastructure/events"
	"meraki_estimator/internal/infrastructure/logger"
	"meraki_estimator/internal/infrastructure/storage"
	"meraki_estimator/internal/usecase"
	"meraki_estimator/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           Meraki Estimator API
// @version         1.0
// @description     Renovation estimate wizard: estimates, drafts, totals and change events.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open the estimate store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close the estimate store")
		}
	}()

	bus := events.NewBus()
	registry := usecase.NewProfileRegistry(func(profileID string) interfaces.IKeyValueStore {
		return store.Scope(profileID)
	}, bus)

	// other processes (estimatectl, a second API instance) share the sqlite file
	go func() {
		if err := store.Watch(ctx, cfg.StoreWatchInterval, bus.NotifyExternal); err != nil {
			logrus.WithError(err).Warn("Store watcher stopped")
		}
	}()

	router := routes.NewRouter(routes.Dependencies{Registry: registry, Bus: bus})
	if err := routes.Run(ctx, cfg.Port, router); err != nil {
		logrus.WithError(err).Fatal("Failed to startup the application")
	}
}
