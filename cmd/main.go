package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avatarmeet/backend/config"
	"github.com/avatarmeet/backend/internal/memstore"
	"github.com/avatarmeet/backend/internal/mongo"
	"github.com/avatarmeet/backend/internal/service"
	httpx "github.com/avatarmeet/backend/internal/transport/http"
	"github.com/avatarmeet/backend/pkg/logger"
)

func main() {
	// --- config ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting avatarmeet backend",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version)

	// --- mongo (optional: the service runs fallback-only without it) ---
	ctx := context.Background()

	var (
		roomStore service.RoomStore
		partStore service.ParticipantStore
		health    service.StoreHealth
	)
	if cfg.Mongo.URI != "" {
		db, err := mongo.New(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			slog.Warn("mongo unavailable, running without persistent store", "err", err)
		} else {
			defer db.Close(context.Background())
			roomStore = mongo.NewRoomRepository(db)
			partStore = mongo.NewParticipantRepository(db)
			health = db
		}
	} else {
		slog.Warn("DATABASE_URL not set, running without persistent store")
	}

	// --- services ---
	fallback := memstore.NewRoomCache()
	tracker := service.NewTracker(partStore)
	registry := service.NewRegistry(roomStore, health, fallback, tracker)

	// --- HTTP ---
	handler := httpx.NewHandler(registry, cfg.Mongo.URI != "", cfg.Mongo.Database)
	router := httpx.NewRouter(handler)
	httpSrv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listen", "addr", cfg.HTTP.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// --- graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal", "sig", sig)
	case err := <-errCh:
		slog.Error("server error", "err", err)
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = httpSrv.Shutdown(ctxShutdown)
	slog.Info("stopped")
}
