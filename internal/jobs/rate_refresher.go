package jobs

import (
	"context"
	"log/slog"
	"time"

	"socialagent/internal/rates"
)

// RateRefresher keeps the rate cache warm by fetching on an interval so
// request paths rarely wait on live sources.
type RateRefresher struct {
	fetcher  *rates.Fetcher
	interval time.Duration
}

// NewRateRefresher creates a refresher running at the given interval.
func NewRateRefresher(fetcher *rates.Fetcher, interval time.Duration) *RateRefresher {
	return &RateRefresher{fetcher: fetcher, interval: interval}
}

// Start begins the refresh loop. It fetches once immediately, then on every
// tick until the context is cancelled.
func (r *RateRefresher) Start(ctx context.Context) {
	slog.Info("rate refresher started", "interval", r.interval)

	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("rate refresher stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *RateRefresher) refresh(ctx context.Context) {
	snapshot := r.fetcher.Fetch(ctx)
	slog.Info("rate refreshed",
		"rate", snapshot.CurrentRate,
		"source", snapshot.Source,
		"confidence", snapshot.Confidence)
}
