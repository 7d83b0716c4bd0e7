package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/api"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/config"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/snapshot"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Pick the document source: remote static host when configured, local
	// generator output otherwise
	var source snapshot.Source
	if cfg.Snapshot.BaseURL != "" {
		source = snapshot.NewHTTPSource(cfg.Snapshot.BaseURL)
	} else {
		source = snapshot.NewFileSource(cfg.Snapshot.DataDir)
	}

	store := snapshot.NewStore(snapshot.NewLoader(source))

	// Initial load. Missing documents are not fatal: the affected views
	// degrade to their no-data state until the next refresh.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := store.Refresh(loadCtx); err != nil {
		log.Printf("Initial snapshot load failed: %v", err)
	}
	cancelLoad()

	log.Printf("Reading data from %s", source.Describe())

	// Scheduled refresh
	var scheduler *cron.Cron
	if cfg.Snapshot.RefreshSchedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Snapshot.RefreshSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := store.Refresh(ctx); err != nil {
				log.Printf("Scheduled snapshot refresh failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Invalid refresh schedule %q: %v", cfg.Snapshot.RefreshSchedule, err)
		}
		scheduler.Start()
		log.Printf("Snapshot refresh scheduled: %s", cfg.Snapshot.RefreshSchedule)
	}

	// Create router
	router := api.NewRouter(store, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	if scheduler != nil {
		scheduler.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
