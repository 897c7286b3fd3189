package rates

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"socialagent/internal/models"
)

// cacheTTL is the freshness window for a cached snapshot.
const cacheTTL = time.Hour

// ErrNoCache is returned when no cached snapshot exists on disk.
var ErrNoCache = errors.New("rates: no cached snapshot")

// Cache is a single-file JSON store for the last successful rate fetch.
// Writes are whole-file rewrites; concurrent writers are last-writer-wins.
type Cache struct {
	path string
}

// NewCache creates a cache backed by the given file path.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Read returns the cached snapshot regardless of age.
func (c *Cache) Read() (models.RateSnapshot, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.RateSnapshot{}, ErrNoCache
		}
		return models.RateSnapshot{}, fmt.Errorf("read rate cache: %w", err)
	}

	var snapshot models.RateSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return models.RateSnapshot{}, fmt.Errorf("parse rate cache: %w", err)
	}
	return snapshot, nil
}

// Fresh reports whether the snapshot's retrieval timestamp is within the
// freshness window.
func (c *Cache) Fresh(snapshot models.RateSnapshot, now time.Time) bool {
	if snapshot.CachedAt.IsZero() {
		return false
	}
	return now.Sub(snapshot.CachedAt) < cacheTTL
}

// Write stores the snapshot, tagging it with the retrieval time.
func (c *Cache) Write(snapshot models.RateSnapshot, now time.Time) error {
	snapshot.CachedAt = now

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode rate cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write rate cache: %w", err)
	}
	return nil
}
