package rates

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"socialagent/internal/metrics"
	"socialagent/internal/models"
)

const userAgent = "SocialAgent-RateFetcher/1.0"

const defaultScrapeURL = "https://www.freddiemac.com/pmms"

var defaultFeedURLs = []string{
	"https://www.bankrate.com/rss/mortgage-rates.xml",
	"https://www.mortgagenewsdaily.com/mortgage_rates/rss.xml",
	"https://www.housingwire.com/feed/",
}

// Synthesized fallback rates are drawn from this range.
const (
	synthMinRate = 6.8
	synthMaxRate = 7.5
)

// Fetcher resolves a current rate snapshot from a chain of sources: fresh
// cache, survey page scrape, RSS feeds, stale cache, and finally a
// synthesized value. Fetch never fails; the terminal link always succeeds.
type Fetcher struct {
	cache      *Cache
	client     *http.Client
	feedParser *gofeed.Parser
	scrapeURL  string
	feedURLs   []string

	now       func() time.Time
	randFloat func() float64
}

// NewFetcher creates a fetcher caching to the given file path.
func NewFetcher(cacheFile string) *Fetcher {
	return &Fetcher{
		cache:      NewCache(cacheFile),
		client:     &http.Client{Timeout: scrapeTimeout},
		feedParser: gofeed.NewParser(),
		scrapeURL:  defaultScrapeURL,
		feedURLs:   defaultFeedURLs,
		now:        time.Now,
		randFloat:  rand.Float64,
	}
}

// Fetch returns the current rate snapshot. Live sources are tried in priority
// order with each failure swallowed; the chain degrades through the cache to
// a synthesized value rather than surfacing an error.
func (f *Fetcher) Fetch(ctx context.Context) models.RateSnapshot {
	cached, cacheErr := f.cache.Read()
	if cacheErr == nil && f.cache.Fresh(cached, f.now()) {
		metrics.RecordRateFetch("cache", "hit")
		return cached
	}

	if snapshot, err := f.fetchScrape(ctx); err == nil {
		metrics.RecordRateFetch("scrape", "ok")
		f.cacheSnapshot(snapshot)
		return snapshot
	} else {
		metrics.RecordRateFetch("scrape", "error")
		slog.Warn("rate scrape failed", "url", f.scrapeURL, "error", err)
	}

	if snapshot, err := f.fetchFeeds(ctx); err == nil {
		metrics.RecordRateFetch("feed", "ok")
		f.cacheSnapshot(snapshot)
		return snapshot
	} else {
		metrics.RecordRateFetch("feed", "error")
		slog.Warn("rate feeds failed", "error", err)
	}

	if cacheErr == nil {
		metrics.RecordRateFetch("cache", "stale")
		return cached
	}

	metrics.RecordRateFetch("synthesized", "ok")
	return f.synthesize()
}

func (f *Fetcher) cacheSnapshot(snapshot models.RateSnapshot) {
	if err := f.cache.Write(snapshot, f.now()); err != nil {
		slog.Warn("failed to cache rate snapshot", "error", err)
	}
}

// synthesize produces a plausible snapshot when every other link has failed.
func (f *Fetcher) synthesize() models.RateSnapshot {
	base := round2(synthMinRate + f.randFloat()*(synthMaxRate-synthMinRate))
	return models.RateSnapshot{
		CurrentRate:  base,
		PreviousRate: round2(base + 0.05),
		RateChange:   -0.05,
		Date:         f.now().Format("2006-01-02"),
		Source:       "Fallback Data",
		Confidence:   models.ConfidenceLow,
	}
}
