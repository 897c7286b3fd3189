package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"socialagent/internal/config"
	"socialagent/internal/jobs"
	"socialagent/internal/metrics"
	"socialagent/internal/rates"
	"socialagent/internal/server"
	"socialagent/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		metrics.Init()

		fetcher := rates.NewFetcher(cfg.RateCacheFile)
		contentStore := store.New(cfg.ContentDir)

		srv := server.New(cfg)
		srv.RegisterRoutes(fetcher, contentStore)

		jobCtx, cancelJobs := context.WithCancel(cmd.Context())
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
		return srv.Shutdown()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
