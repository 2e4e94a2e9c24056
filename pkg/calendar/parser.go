package calendar

import (
	"regexp"
	"strings"

	"github.com/emersion/go-ical"

	"nextcall/pkg/models"
)

// propGoogleConference is the Google Calendar extension property carrying
// the conferencing URL.
const propGoogleConference = "X-GOOGLE-CONFERENCE"

// parseEvent maps a VEVENT component onto a models.Event. An entry whose
// DTSTART cannot be normalized keeps a zero StartTime and is filtered out
// later; that is deliberate, per-entry parse failures are not feed errors.
func parseEvent(comp *ical.Component) models.Event {
	event := models.Event{}

	// Extract iCal UID for stable event identification
	if uidProp := comp.Props.Get(ical.PropUID); uidProp != nil {
		event.ID = uidProp.Value
	}

	if summaryProp := comp.Props.Get(ical.PropSummary); summaryProp != nil {
		event.Summary = summaryProp.Value
	}

	if descProp := comp.Props.Get(ical.PropDescription); descProp != nil {
		event.Description = descProp.Value
	}

	if locProp := comp.Props.Get(ical.PropLocation); locProp != nil {
		event.Location = locProp.Value
	}

	if startProp := comp.Props.Get(ical.PropDateTimeStart); startProp != nil {
		tzid := startProp.Params.Get(ical.ParamTimezoneID)
		if t, ok := normalizeDateTime(startProp.Value, tzid); ok {
			event.StartTime = t
		}
	}

	if endProp := comp.Props.Get(ical.PropDateTimeEnd); endProp != nil {
		tzid := endProp.Params.Get(ical.ParamTimezoneID)
		if t, ok := normalizeDateTime(endProp.Value, tzid); ok {
			event.EndTime = t
		}
	}

	if statusProp := comp.Props.Get(ical.PropStatus); statusProp != nil {
		event.Status = statusProp.Value
	}

	// Polyfill: If status is not CANCELLED but title indicates cancellation, set status to CANCELLED
	if event.Status != "CANCELLED" && isCancelledTitle(event.Summary) {
		event.Status = "CANCELLED"
	}

	event.VideoLink = videoLink(
		propValue(comp, propGoogleConference),
		propValue(comp, ical.PropURL),
		event.Location,
		event.Description,
	)

	return event
}

func propValue(comp *ical.Component, name string) string {
	if prop := comp.Props.Get(name); prop != nil {
		return prop.Value
	}
	return ""
}

func isCancelledTitle(title string) bool {
	cleanTitle := regexp.MustCompile(`[^a-zA-Z0-9]+`).ReplaceAllString(strings.ToLower(title), "")
	return strings.HasPrefix(cleanTitle, "canceled") || strings.HasPrefix(cleanTitle, "cancelled")
}
