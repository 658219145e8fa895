// @title TradeLens API
// @version 1.0
// @description Backend for the TradeLens trading practice platform.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"
	"path/filepath"

	"tradelens_backend/internal/app"
	"tradelens_backend/internal/config"
	"tradelens_backend/pkg/configwatcher"
	"tradelens_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yaml")
	watchConfig := flag.Bool("watch-config", false, "reload config on file change")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watchConfig {
		go configwatcher.WatchConfig(filepath.Join(*configDir, "config.yaml"), application.ReloadConfig)
	}

	application.Run()
}
