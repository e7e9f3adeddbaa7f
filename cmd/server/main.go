package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/yourname/sleeplog/internal"
	"github.com/yourname/sleeplog/internal/api"
	"github.com/yourname/sleeplog/internal/auth"
	"github.com/yourname/sleeplog/internal/config"
	"github.com/yourname/sleeplog/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	if cfg.StorageBackend == "sqlite" {
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				logger.Fatalf("failed to create data directory: %v", err)
			}
		}
	}

	store, err := storage.NewStore(cfg.StorageBackend, cfg.SQLitePath, cfg.PostgresDSN, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}
	defer store.Close()

	sessions := auth.NewSessions(cfg.SessionSecret, cfg.SessionTTL)
	app := api.NewServer(logger, store, store, sessions)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := api.NewRouter(app, cfg.TemplatesGlob)

	logger.Infof("server listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
