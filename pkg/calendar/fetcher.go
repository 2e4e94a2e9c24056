package calendar

import (
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"nextcall/pkg/models"
)

const (
	// startLookback is how long after its start an event still counts as
	// the next call, so a just-started meeting is not lost between polls.
	startLookback = 10 * time.Minute

	// recurrenceLookahead bounds RRULE expansion. The watcher only ever
	// needs the earliest upcoming call, so a week is plenty.
	recurrenceLookahead = 7 * 24 * time.Hour
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

// Fetch downloads and parses the iCal feed at url and returns the entries
// that qualify as upcoming video calls, sorted ascending by start time.
//
// Failure modes are typed: *NetworkError for transport problems,
// *HTTPStatusError for non-2xx responses, *FormatError for payloads that
// are not decodable iCalendar. A successful fetch with nothing qualifying
// returns ErrNoUpcomingEvents so callers can tell idle from broken.
func Fetch(url string) ([]models.Event, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPStatusError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	events, err := parseFeed(string(body), time.Now())
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrNoUpcomingEvents
	}
	return events, nil
}

func parseFeed(bodyStr string, now time.Time) ([]models.Event, error) {
	if err := validateICalFormat(bodyStr); err != nil {
		return nil, err
	}

	decoder := ical.NewDecoder(strings.NewReader(bodyStr))
	events := []models.Event{}
	seenEventIDs := make(map[string]bool)
	seenEventKeys := make(map[string]bool) // key: summary + start time

	horizon := now.Add(recurrenceLookahead)
	stats := &filterStats{}

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &FormatError{Reason: "failed to decode calendar: " + err.Error()}
		}

		for _, comp := range cal.Children {
			stats.totalComponents++
			if comp.Name != ical.CompEvent {
				continue
			}
			stats.totalEvents++

			event := parseEvent(comp)
			if event.ID == "" {
				// No iCal UID; tag with a throwaway ID so dedupe by
				// summary+time still applies.
				event.ID = uuid.NewString()
			}

			if rruleProp := comp.Props.Get(ical.PropRecurrenceRule); rruleProp != nil {
				for _, instance := range expandRecurringEvent(event, rruleProp.Value, now.Add(-startLookback), horizon) {
					if qualifies(instance, now, stats) && !isDuplicate(instance, seenEventIDs, seenEventKeys, stats) {
						events = append(events, instance)
					}
				}
				continue
			}

			if qualifies(event, now, stats) && !isDuplicate(event, seenEventIDs, seenEventKeys, stats) {
				events = append(events, event)
			}
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})

	stats.logSummary(len(events))
	return events, nil
}

func validateICalFormat(bodyStr string) error {
	// Check if response is HTML instead of iCalendar
	upperBody := strings.ToUpper(strings.TrimSpace(bodyStr))
	if strings.HasPrefix(upperBody, "<!DOCTYPE") || strings.HasPrefix(upperBody, "<HTML") {
		return &FormatError{Reason: "received HTML instead of iCalendar data - check if URL requires authentication"}
	}

	if !strings.HasPrefix(strings.TrimSpace(bodyStr), "BEGIN:VCALENDAR") {
		previewLen := 100
		if len(bodyStr) < previewLen {
			previewLen = len(bodyStr)
		}
		return &FormatError{Reason: "invalid iCalendar format - expected BEGIN:VCALENDAR, got: " +
			strings.TrimSpace(bodyStr[:previewLen])}
	}

	return nil
}

// qualifies reports whether an event is a candidate next call: it must
// have a parseable start, not be cancelled, carry a video link, and start
// no earlier than startLookback ago.
func qualifies(event models.Event, now time.Time, stats *filterStats) bool {
	if event.StartTime.IsZero() {
		stats.filteredMissingTime++
		log.Printf("  [FILTERED] Unparseable start - Event: \"%s\"", event.Summary)
		return false
	}

	if event.Status == "CANCELLED" {
		stats.filteredCancelled++
		log.Printf("  [FILTERED] [Cancelled] - Event: \"%s\" (Start: %s)",
			event.Summary, event.StartTime.Format("2006-01-02 15:04"))
		return false
	}

	if event.VideoLink == "" {
		stats.filteredNoLink++
		return false
	}

	if event.StartTime.Before(now.Add(-startLookback)) {
		stats.filteredTooOld++
		log.Printf("  [FILTERED] [Too old] - Event: \"%s\" (Start: %s, Now: %s)",
			event.Summary, event.StartTime.Format("2006-01-02 15:04"), now.Format("2006-01-02 15:04"))
		return false
	}

	return true
}

func isDuplicate(event models.Event, seenEventIDs, seenEventKeys map[string]bool, stats *filterStats) bool {
	if seenEventIDs[event.ID] {
		stats.filteredDuplicates++
		log.Printf("  [FILTERED] Duplicate (ID) - Event: \"%s\" (ID: %s)", event.Summary, event.ID)
		return true
	}

	eventKey := event.Summary + "|" + event.StartTime.Format(time.RFC3339)
	if seenEventKeys[eventKey] {
		stats.filteredDuplicates++
		log.Printf("  [FILTERED] Duplicate (Summary+Time) - Event: \"%s\" (Start: %s)",
			event.Summary, event.StartTime.Format("2006-01-02 15:04"))
		return true
	}

	seenEventIDs[event.ID] = true
	seenEventKeys[eventKey] = true
	return false
}

type filterStats struct {
	totalComponents     int
	totalEvents         int
	filteredMissingTime int
	filteredCancelled   int
	filteredNoLink      int
	filteredTooOld      int
	filteredDuplicates  int
}

func (s *filterStats) logSummary(includedCount int) {
	totalFiltered := s.filteredMissingTime + s.filteredCancelled + s.filteredNoLink + s.filteredTooOld + s.filteredDuplicates
	log.Printf("  [SUMMARY] Total components: %d, Events: %d, Included: %d, Filtered: %d",
		s.totalComponents, s.totalEvents, includedCount, totalFiltered)
	if totalFiltered > 0 {
		log.Printf("  Filtered breakdown: %d cancelled, %d no link, %d too old, %d unparseable, %d duplicates",
			s.filteredCancelled, s.filteredNoLink, s.filteredTooOld, s.filteredMissingTime, s.filteredDuplicates)
	}
}
