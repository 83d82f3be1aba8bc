package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Black-And-White-Club/cirqit-scoreboard/app"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/attr"
	"github.com/Black-And-White-Club/cirqit-scoreboard/config"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	migrateFirst := flag.Bool("migrate", false, "Apply pending migrations before serving")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	obs := observability.Init(config.ToObsConfig(cfg), os.Stderr)
	logger := obs.Provider.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx, cfg, obs)
	if err != nil {
		logger.Error("Failed to initialize app", attr.Error(err))
		os.Exit(1)
	}
	defer application.Close()

	if *migrateFirst {
		if err := app.Migrate(ctx, application.DB); err != nil {
			logger.Error("Failed to apply migrations", attr.Error(err))
			os.Exit(1)
		}
		logger.Info("Migrations applied")
	}

	if err := application.Run(ctx); err != nil {
		logger.Error("Server stopped with error", attr.Error(err))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
