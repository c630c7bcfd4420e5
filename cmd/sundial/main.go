package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/gnomonlab/sundial/internal/app"
	"github.com/gnomonlab/sundial/internal/config"
	"github.com/gnomonlab/sundial/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	viewer, err := app.New(cfg)
	if err != nil {
		logger.Fatal("starting viewer", zap.Error(err))
	}
	defer viewer.Close()

	if err := viewer.Run(); err != nil {
		logger.Fatal("viewer stopped", zap.Error(err))
	}
	logger.Info("goodbye")
}
