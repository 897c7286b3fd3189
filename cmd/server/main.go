package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"socialagent/internal/config"
	"socialagent/internal/jobs"
	"socialagent/internal/metrics"
	"socialagent/internal/rates"
	"socialagent/internal/server"
	"socialagent/internal/store"
)

func main() {
	cfg := config.Load()
	metrics.Init()

	fetcher := rates.NewFetcher(cfg.RateCacheFile)
	contentStore := store.New(cfg.ContentDir)

	srv := server.New(cfg)
	srv.RegisterRoutes(fetcher, contentStore)

	// Background rate refresh
	jobCtx, cancelJobs := context.WithCancel(context.Background())
	defer cancelJobs()
	if cfg.RateRefreshInterval > 0 {
		refresher := jobs.NewRateRefresher(fetcher, cfg.RateRefreshInterval)
		go refresher.Start(jobCtx)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancelJobs()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
