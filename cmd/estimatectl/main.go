// Command estimatectl inspects and edits the estimates of a profile straight
// from the store, for support work and scripting.
package main

import (
	"context"
	"os"

	"meraki_estimator/internal/infrastructure/config"
	"meraki_estimator/internal/infrastructure/logger"
	"meraki_estimator/internal/infrastructure/storage"
	"meraki_estimator/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	app := newApp(os.Stdout, openEngine)
	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("estimatectl failed")
	}
}

// openEngine opens the configured store and scopes it to profile. Writes go
// straight to the store; a running API instance on sqlite picks them up
// through its watcher.
func openEngine(ctx context.Context, profile string) (usecase.IEstimateUseCase, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return usecase.NewEstimateUseCase(store.Scope(profile), nil), store.Close, nil
}
