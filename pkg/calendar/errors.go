package calendar

import (
	"errors"
	"fmt"
)

// ErrNoUpcomingEvents is returned when the feed was fetched and parsed
// successfully but no entry has both a video link and a start time no
// earlier than ten minutes ago. Callers distinguish this "idle" outcome
// from real failures.
var ErrNoUpcomingEvents = errors.New("no upcoming events with video links")

// HTTPStatusError is returned for any non-success HTTP status. The raw
// status and body are kept for diagnosis.
type HTTPStatusError struct {
	Status int
	Body   string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Body)
}

// FormatError is returned when the response is not a decodable iCalendar
// payload.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

// NetworkError wraps transport-level failures.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
