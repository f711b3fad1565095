// Package main is the entry point for Zombie Quest.
package main

import (
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/config"
	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/game"
	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Player lines fall back to their English source text when no
	// translation catalog exists for the configured language.
	gotext.Configure("locales", cfg.Game.Language, "zombiequest")

	logger.Info("=== Zombie Quest ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run game
	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	// Run the game loop
	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}
