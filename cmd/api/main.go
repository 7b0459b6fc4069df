package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/project-submissions/config"
	"github.com/GoSim-25-26J-441/project-submissions/internal/bootstrap"
	"github.com/GoSim-25-26J-441/project-submissions/internal/logging"
	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/janitor"
	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/uploads"
)

const serviceName = "project-submissions"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	logging.SetLevel(cfg.App.LogLevel)

	ctx := context.Background()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer func() { _ = closeStore() }()

	uploader, err := uploads.NewUploader(cfg.Storage.UploadsDir)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	var sweeper *janitor.Janitor
	if cfg.Janitor.Schedule != "" {
		sweeper = janitor.New(store, uploader, cfg.Janitor.Grace)
		if err := sweeper.Start(cfg.Janitor.Schedule); err != nil {
			log.Fatalf("janitor: %v", err)
		}
		defer sweeper.Stop()
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		Store:          store,
		Uploader:       uploader,
		PublicDir:      cfg.Storage.PublicDir,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server is running on http://localhost:%s (store=%s version=%s)",
			cfg.Server.Port, cfg.Storage.Backend, cfg.App.Version)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutting down signal=%s", sig.String())
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[error] operation=shutdown error=%v", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[error] operation=serve error=%v", err)
		}
	}
}
