// Package scraper combines the fetcher and extractor into a per-page
// pipeline and a sequential batch runner. The pipeline is a total function:
// every per-page failure becomes a failed record, never an error to the
// caller. Only store write failures abort a batch.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtnitsch/web-scraper/models"
	"github.com/dtnitsch/web-scraper/pkg/extractor"
	"github.com/dtnitsch/web-scraper/pkg/fetcher"
	"github.com/dtnitsch/web-scraper/pkg/session"
)

// Store is the persistence surface the runner needs. Both methods append;
// rows are never mutated afterwards.
type Store interface {
	InsertRecord(rec models.ScrapedRecord) (int64, error)
	InsertStats(stats models.SessionStats) (int64, error)
}

type Scraper struct {
	logger  *slog.Logger
	fetcher *fetcher.Fetcher
	store   Store
	delay   time.Duration

	// Overridable for tests.
	now   func() time.Time
	sleep func(time.Duration)
}

// New builds a Scraper. delay is the pause between consecutive pages in a
// batch; it is not applied after the final page.
func New(logger *slog.Logger, f *fetcher.Fetcher, store Store, delay time.Duration) *Scraper {
	return &Scraper{
		logger:  logger,
		fetcher: f,
		store:   store,
		delay:   delay,
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// ScrapePage fetches and extracts a single URL. It never returns an error:
// fetch failures, unparseable bases and extractor failures all collapse into
// a failed record that keeps the input URL and empty content fields.
func (s *Scraper) ScrapePage(ctx context.Context, rawURL string) models.ScrapedRecord {
	page, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		s.logger.Error("fetch failed", "url", rawURL, "error", err)
		return models.NewFailedRecord(rawURL)
	}

	ext, err := extractor.Extract(page.Body, rawURL)
	if err != nil {
		s.logger.Error("extraction failed", "url", rawURL, "error", err)
		return models.NewFailedRecord(rawURL)
	}

	return models.ScrapedRecord{
		URL:      rawURL,
		Title:    ext.Title,
		Content:  ext.Content,
		Links:    ext.Links,
		Metadata: ext.Metadata,
		Status:   models.StatusSuccess,
	}
}

// Run scrapes urls strictly in input order, persisting each record as it
// completes and sleeping the configured delay between pages. On completion it
// persists exactly one stats row covering the whole batch, delays included.
//
// The returned records match the input order and length regardless of
// individual page failures. A store write failure is fatal: the batch stops,
// already-persisted records remain, and no stats row is written.
func (s *Scraper) Run(ctx context.Context, urls []string) ([]models.ScrapedRecord, models.SessionStats, error) {
	start := s.now()
	stats := models.SessionStats{
		SessionID:  session.GenerateID(start),
		TotalPages: len(urls),
	}

	records := make([]models.ScrapedRecord, 0, len(urls))
	for i, rawURL := range urls {
		s.logger.Info("scraping page", "current", i+1, "total", len(urls), "url", rawURL)

		rec := s.ScrapePage(ctx, rawURL)
		records = append(records, rec)

		if _, err := s.store.InsertRecord(rec); err != nil {
			return records, models.SessionStats{}, fmt.Errorf("failed to persist record for %s: %w", rawURL, err)
		}

		if rec.Status == models.StatusSuccess {
			stats.Successful++
		} else {
			stats.Failed++
		}

		if i < len(urls)-1 && s.delay > 0 {
			s.sleep(s.delay)
		}
	}

	stats.Duration = s.now().Sub(start).Seconds()
	if _, err := s.store.InsertStats(stats); err != nil {
		return records, models.SessionStats{}, fmt.Errorf("failed to persist session stats: %w", err)
	}

	s.logger.Info("batch completed",
		"session_id", stats.SessionID,
		"successful", stats.Successful,
		"failed", stats.Failed,
		"duration_seconds", stats.Duration,
	)
	return records, stats, nil
}
