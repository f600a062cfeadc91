// Package export serializes stored rows to CSV and JSON. Both formats carry
// every column of the storage schema; JSON nests metadata as an object while
// CSV keeps it as the serialized JSON string, matching what is stored.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dtnitsch/web-scraper/pkg/db"
)

const timestampLayout = "2006-01-02 15:04:05"

// WriteCSV writes one header row plus one row per record.
func WriteCSV(w io.Writer, records []db.StoredRecord) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "url", "title", "content", "metadata", "timestamp", "status"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		metadata, err := json.Marshal(rec.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode metadata for record %d: %w", rec.ID, err)
		}

		row := []string{
			strconv.FormatInt(rec.ID, 10),
			rec.URL,
			rec.Title,
			rec.Content,
			string(metadata),
			rec.Timestamp.Format(timestampLayout),
			string(rec.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for record %d: %w", rec.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteJSON writes the records as an indented JSON array of objects, one per
// record, with metadata nested as a JSON value.
func WriteJSON(w io.Writer, records []db.StoredRecord) error {
	if records == nil {
		records = []db.StoredRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
