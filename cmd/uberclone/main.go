package main

import (
	"context"
	"flag"
	"os"

	"uberclone/config"
	"uberclone/internal/app"
	"uberclone/pkg/logger"
)

var (
	helpFlag   = flag.Bool("help", false, "Show help message")
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()
	if *helpFlag {
		config.PrintHelp()
		return
	}

	ctx := context.Background()
	log := logger.InitLogger("uberclone", logger.LevelDebug)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to configure application", err)
		config.PrintHelp()
		return
	}

	// Printing configuration
	config.PrintConfig(cfg)

	if cfg.LogLevel != "" && logger.ValidateLogLevel(cfg.LogLevel) {
		log = logger.InitLogger("uberclone", cfg.LogLevel)
	}

	// Creating application
	application, err := app.NewApplication(ctx, *cfg, log)
	if err != nil {
		log.Error(ctx, "failed to init application", err)
		os.Exit(1)
	}

	// Running the application
	if err = application.Run(ctx); err != nil {
		log.Error(ctx, "failed to run application", err)
		os.Exit(1)
	}
}
