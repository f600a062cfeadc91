// Package session generates batch session identifiers.
package session

import "time"

// GenerateID derives a session identifier from the batch start time.
// Format: YYYYMMDD_HHMMSS. IDs are unique per batch at call granularity;
// sub-second concurrent batches are not a supported workload.
func GenerateID(start time.Time) string {
	return start.Format("20060102_150405")
}
