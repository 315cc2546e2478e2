package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"petresq/internal/platform/config"
	"petresq/internal/platform/logger"
	"petresq/internal/platform/metrics"
	"petresq/internal/router"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat).With(map[string]any{"app": cfg.AppName})

	r := router.New(router.Options{
		DataDir: cfg.DataDir,
		Logger:  log,
		Metrics: metrics.New(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{
		"port":    cfg.Port,
		"dataDir": cfg.DataDir,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}
