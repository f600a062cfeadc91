package db

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/dtnitsch/web-scraper/models"
)

// StoredRecord is a scraped_data row as read back from the store.
type StoredRecord struct {
	ID        int64               `json:"id"`
	URL       string              `json:"url"`
	Title     string              `json:"title"`
	Content   string              `json:"content"`
	Metadata  models.PageMetadata `json:"metadata"`
	Timestamp time.Time           `json:"timestamp"`
	Status    models.Status       `json:"status"`
}

// StoredStats is a scraping_stats row as read back from the store.
type StoredStats struct {
	ID         int64     `json:"id"`
	SessionID  string    `json:"session_id"`
	TotalPages int       `json:"total_pages"`
	Successful int       `json:"successful"`
	Failed     int       `json:"failed"`
	Duration   float64   `json:"duration"`
	Timestamp  time.Time `json:"timestamp"`
}

// InsertRecord appends one scraped record. The row timestamp is assigned by
// the database. Returns the new row id.
func (db *DB) InsertRecord(rec models.ScrapedRecord) (int64, error) {
	metadata, err := json.Marshal(rec.Metadata)
	if err != nil {
		return 0, fmt.Errorf("failed to encode metadata: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO scraped_data (url, title, content, metadata, status)
		VALUES (?, ?, ?, ?, ?)
	`, rec.URL, rec.Title, rec.Content, string(metadata), string(rec.Status))
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get record ID: %w", err)
	}
	return id, nil
}

// InsertStats appends one session-statistics row. Returns the new row id.
func (db *DB) InsertStats(stats models.SessionStats) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO scraping_stats (session_id, total_pages, successful, failed, duration)
		VALUES (?, ?, ?, ?, ?)
	`, stats.SessionID, stats.TotalPages, stats.Successful, stats.Failed, stats.Duration)
	if err != nil {
		return 0, fmt.Errorf("failed to insert stats: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get stats ID: %w", err)
	}
	return id, nil
}

// ListRecords returns all scraped records in insertion order.
func (db *DB) ListRecords() ([]StoredRecord, error) {
	rows, err := db.Query(`
		SELECT id, url, title, content, metadata, timestamp, status
		FROM scraped_data
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []StoredRecord
	for rows.Next() {
		var rec StoredRecord
		var metadata string
		if err := rows.Scan(&rec.ID, &rec.URL, &rec.Title, &rec.Content, &metadata, &rec.Timestamp, &rec.Status); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if metadata != "" {
			if err := json.Unmarshal([]byte(metadata), &rec.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode metadata for record %d: %w", rec.ID, err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// ListStats returns all session statistics in insertion order.
func (db *DB) ListStats() ([]StoredStats, error) {
	rows, err := db.Query(`
		SELECT id, session_id, total_pages, successful, failed, duration, timestamp
		FROM scraping_stats
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	var stats []StoredStats
	for rows.Next() {
		var s StoredStats
		if err := rows.Scan(&s.ID, &s.SessionID, &s.TotalPages, &s.Successful, &s.Failed, &s.Duration, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stats: %w", err)
	}

	return stats, nil
}

// Aggregate summarizes the record log: page counts, success rate as a
// percentage, and mean content length over successful records.
type Aggregate struct {
	TotalPages       int     `json:"total_pages"`
	Successful       int     `json:"successful"`
	Failed           int     `json:"failed"`
	SuccessRate      float64 `json:"success_rate"`
	AvgContentLength float64 `json:"avg_content_length"`
}

// Aggregate derives summary statistics from the scraped_data table. An empty
// table yields all-zero values rather than a division error.
func (db *DB) Aggregate() (*Aggregate, error) {
	var agg Aggregate

	err := db.QueryRow(`
		SELECT
			COUNT(CASE WHEN status = 'success' THEN 1 END),
			COUNT(CASE WHEN status = 'failed' THEN 1 END),
			COALESCE(AVG(CASE WHEN status = 'success' THEN LENGTH(content) END), 0)
		FROM scraped_data
	`).Scan(&agg.Successful, &agg.Failed, &agg.AvgContentLength)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate records: %w", err)
	}

	agg.TotalPages = agg.Successful + agg.Failed
	if agg.TotalPages > 0 {
		agg.SuccessRate = float64(agg.Successful) / float64(agg.TotalPages) * 100
	}
	agg.AvgContentLength = math.Round(agg.AvgContentLength*100) / 100

	return &agg, nil
}
