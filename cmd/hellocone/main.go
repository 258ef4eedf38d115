// Package main is the desktop entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/hellocone/internal/app"
	"github.com/Faultbox/hellocone/internal/config"
	"github.com/Faultbox/hellocone/internal/engine/shader"
	"github.com/Faultbox/hellocone/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Hello Cone ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		if errors.Is(err, shader.ErrUnrecoverable) {
			logger.Fatal("shader build failed", zap.Error(err))
		}
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("app error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("app closed normally")
}
