package models

import "time"

// ActiveEvent tracks the one call that is currently in its started window,
// together with which reminder tiers have already fired. At most one exists
// at a time; a started event with a different identity replaces it wholesale.
type ActiveEvent struct {
	Summary   string
	StartTime time.Time
	VideoLink string

	NotifiedAtStart bool
	NotifiedAt2Min  bool
	NotifiedAt5Min  bool
}

// NewActiveEvent creates an ActiveEvent for a freshly detected started call.
// No tiers are marked; the reminder engine decides which are already behind.
func NewActiveEvent(event Event) *ActiveEvent {
	return &ActiveEvent{
		Summary:   event.Summary,
		StartTime: event.StartTime,
		VideoLink: event.VideoLink,
	}
}

// Matches reports whether the given event is the same call this ActiveEvent
// tracks. Identity is the (summary, start time) pair.
func (a *ActiveEvent) Matches(event Event) bool {
	return a.Summary == event.Summary && a.StartTime.Equal(event.StartTime)
}

// MinutesSinceStart returns whole minutes elapsed since the call started,
// truncated toward zero.
func (a *ActiveEvent) MinutesSinceStart(now time.Time) int {
	return int(now.Sub(a.StartTime) / time.Minute)
}
