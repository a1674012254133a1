package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/api"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/api/handlers"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/app"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/config"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/database"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/scheduler"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	services, err := app.New(db, cfg, time.Now)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}
	if !services.Shares.Enabled() {
		log.Println("SHARE_TOKEN_KEY not set, report sharing disabled")
	}

	// Snapshot schedule
	var snapshots *scheduler.Scheduler
	if cfg.Snapshot.Enabled {
		snapshots, err = scheduler.New(cfg.Snapshot.Schedule, services.Snapshots, 10*time.Minute)
		if err != nil {
			log.Fatalf("Failed to create snapshot scheduler: %v", err)
		}
		snapshots.Start()
		log.Printf("Snapshot refresh scheduled: %s", cfg.Snapshot.Schedule)
	}

	router := api.NewRouter(
		handlers.NewSystemHandler(services.System),
		handlers.NewAnalyticsHandler(services.Analytics, services.Snapshots, services.Shares),
		cfg,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server %s on %s", version.Version, cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if snapshots != nil {
		select {
		case <-snapshots.Stop().Done():
		case <-ctx.Done():
			log.Println("Snapshot refresh still running at shutdown")
		}
	}

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
