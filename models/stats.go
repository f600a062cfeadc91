package models

// SessionStats summarizes one batch run. Exactly one row is written per
// completed batch; a crashed batch leaves no stats row behind.
type SessionStats struct {
	SessionID  string  `json:"session_id"`
	TotalPages int     `json:"total_pages"`
	Successful int     `json:"successful"`
	Failed     int     `json:"failed"`
	Duration   float64 `json:"duration"` // wall-clock seconds for the whole batch
}
