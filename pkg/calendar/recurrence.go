package calendar

import (
	"log"
	"time"

	"github.com/teambition/rrule-go"

	"nextcall/pkg/models"
)

// expandRecurringEvent expands an RRULE into concrete instances whose start
// falls inside [windowStart, windowEnd]. Each instance keeps the base
// event's duration and gets a per-occurrence ID.
func expandRecurringEvent(baseEvent models.Event, rule string, windowStart, windowEnd time.Time) []models.Event {
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		log.Printf("  [RECURRING] Unparseable RRULE %q for event \"%s\": %v", rule, baseEvent.Summary, err)
		return nil
	}
	r.DTStart(baseEvent.StartTime)

	duration := baseEvent.EndTime.Sub(baseEvent.StartTime)

	events := []models.Event{}
	for _, start := range r.Between(windowStart, windowEnd, true) {
		instance := baseEvent
		instance.StartTime = start
		if !baseEvent.EndTime.IsZero() {
			instance.EndTime = start.Add(duration)
		}
		instance.ID = baseEvent.ID + "-" + start.Format(time.RFC3339)
		events = append(events, instance)
	}

	if len(events) > 0 {
		log.Printf("  [RECURRING] Expanded %d instances of \"%s\"", len(events), baseEvent.Summary)
	}
	return events
}
