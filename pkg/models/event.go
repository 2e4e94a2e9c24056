package models

import "time"

// Event represents a calendar event normalized from an iCal entry
type Event struct {
	ID          string    // iCal event UID (or generated fallback)
	Summary     string    // Event title/summary
	Description string    // Event description
	Location    string    // Event location
	StartTime   time.Time // Event start time, absolute instant
	EndTime     time.Time // Event end time
	VideoLink   string    // Joinable call URL (Zoom, Google Meet, etc.)
	Status      string    // Event status (CONFIRMED, CANCELLED, NEEDS-ACTION)
}
