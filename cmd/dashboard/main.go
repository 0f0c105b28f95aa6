package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Vovarama1992/intent-engine/internal/config"
	"github.com/Vovarama1992/intent-engine/internal/dashboard"
	"github.com/Vovarama1992/intent-engine/internal/logging"
	"github.com/Vovarama1992/intent-engine/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config")
	proxyURL := flag.String("proxy", "", "classification proxy base url (overrides config)")
	logPath := flag.String("logPath", "", "file to write dashboard logs to")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if *proxyURL != "" {
		cfg.Dashboard.ProxyURL = *proxyURL
	}
	if *logPath != "" {
		cfg.Dashboard.LogPath = *logPath
	}

	logger, err := logging.NewFile(cfg.Log.Level, cfg.Dashboard.LogPath)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer logger.Sync()

	session := dashboard.NewSession(dashboard.NewClient(cfg.Dashboard.ProxyURL, logger), logger)
	app := tui.New(context.Background(), session, cfg.Dashboard.ProxyURL, logger)

	logger.Info("dashboard started", zap.String("proxy", cfg.Dashboard.ProxyURL))
	if err := app.Run(); err != nil {
		log.Fatalf("dashboard error: %v", err)
	}
	logger.Info("dashboard closed")
}
