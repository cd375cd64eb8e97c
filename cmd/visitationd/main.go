package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"visitation-backend/config"
	"visitation-backend/internal/api"
	"visitation-backend/internal/db"
	"visitation-backend/internal/lifecycle"
	"visitation-backend/internal/store"
	"visitation-backend/internal/sweeper"
)

func main() {
	logger := log.New(os.Stdout, "visitation-backend ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)
	engine := lifecycle.NewEngine(appStore)
	logger.Println("data store initialized")

	sweepSvc, err := sweeper.New(&cfg.Sweeper, engine)
	if err != nil {
		logger.Fatalf("failed to initialize sweeper: %v", err)
	}

	// Recovery pass for meetings that expired while the process was down.
	// It must finish before the server starts taking requests; a failure
	// here is logged but not fatal, the daily schedule will retry.
	if count, err := sweepSvc.RunStartupPass(ctx); err != nil {
		logger.Printf("startup sweep failed: %v", err)
	} else {
		logger.Printf("startup sweep archived %d expired meeting(s)", count)
	}

	if err := sweepSvc.Start(ctx); err != nil {
		logger.Fatalf("failed to start sweeper schedule: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Sweeper.Timezone)
	if err != nil {
		logger.Fatalf("failed to load timezone %q: %v", cfg.Sweeper.Timezone, err)
	}

	handler := api.NewHandler(engine, appStore, loc)
	router := api.NewRouter(&cfg.Server, handler)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
