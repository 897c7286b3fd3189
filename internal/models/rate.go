package models

import "time"

// Confidence levels attached to a rate snapshot based on its source.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// RateSnapshot is a point-in-time 30-year mortgage rate reading with
// provenance. Snapshots are immutable once returned by the fetcher.
type RateSnapshot struct {
	CurrentRate  float64   `json:"current_rate"`
	PreviousRate float64   `json:"previous_rate"`
	RateChange   float64   `json:"rate_change"`
	Date         string    `json:"date"`
	Source       string    `json:"source"`
	Confidence   string    `json:"confidence"`
	NewsContext  string    `json:"news_context,omitempty"`
	CachedAt     time.Time `json:"cached_at,omitempty"`
}

// Increased reports whether the rate moved up since the previous reading.
func (r RateSnapshot) Increased() bool {
	return r.RateChange > 0
}

// Decreased reports whether the rate moved down since the previous reading.
func (r RateSnapshot) Decreased() bool {
	return r.RateChange < 0
}
