package scheduler

import (
	"fmt"
	"log"
	"time"

	"nextcall/pkg/models"
)

// Reminder tier offsets from call start.
const (
	tier2Min = 2
	tier5Min = 5
)

// Engine drives the reminder sequence for the one call that is currently
// started. Each tier (start, +2min, +5min) fires at most once per tracked
// call; tiers already behind the clock are skipped, never backfilled.
type Engine struct {
	Notifier Notifier
	Speaker  Speaker
	Presence PresenceGate

	// SuppressStartWhenBusy extends presence gating to the start alert,
	// which otherwise always sends a notification.
	SuppressStartWhenBusy bool
}

// Observe processes one sighting of a started event. The caller passes in
// the ActiveEvent it currently owns (nil if none) and receives the updated
// one back, plus the residual wait until the next pending tier.
//
// A started event whose (summary, start time) identity differs from the
// tracked one replaces it wholesale: the start alert fires immediately and
// any tier whose checkpoint is already in the past is marked consumed. The
// same identity gets at most one reminder per call, highest due tier first.
func (e *Engine) Observe(active *models.ActiveEvent, started models.Event, now time.Time) (*models.ActiveEvent, time.Duration) {
	if active == nil || !active.Matches(started) {
		log.Printf("Starting event sequence for \"%s\" starting at %s",
			started.Summary, started.StartTime.Format("2006-01-02 15:04:05 MST"))

		next := models.NewActiveEvent(started)
		minutes := next.MinutesSinceStart(now)

		e.sendAlert(next, minutes, true)
		next.NotifiedAtStart = true
		// Checkpoints already behind the clock were covered by the start
		// alert's "N minutes ago" phrasing; only later tiers stay pending.
		next.NotifiedAt2Min = minutes >= tier2Min
		next.NotifiedAt5Min = minutes >= tier5Min

		return next, e.residualWait(next, now)
	}

	minutes := active.MinutesSinceStart(now)
	switch {
	case minutes >= tier5Min && !active.NotifiedAt5Min:
		e.sendAlert(active, minutes, false)
		active.NotifiedAt5Min = true
		// The 2-minute checkpoint is behind us; skip it for good.
		active.NotifiedAt2Min = true
	case minutes >= tier2Min && !active.NotifiedAt2Min:
		e.sendAlert(active, minutes, false)
		active.NotifiedAt2Min = true
	}

	return active, e.residualWait(active, now)
}

// residualWait returns the time until the earliest pending tier, bounded
// by the default poll interval.
func (e *Engine) residualWait(active *models.ActiveEvent, now time.Time) time.Duration {
	if !active.NotifiedAt2Min {
		return boundWait(active.StartTime.Add(tier2Min * time.Minute).Sub(now))
	}
	if !active.NotifiedAt5Min {
		return boundWait(active.StartTime.Add(tier5Min * time.Minute).Sub(now))
	}
	return DefaultInterval
}

// sendAlert delivers one reminder. Presence gates everything except the
// start-tier notification (and even that when configured): a user already
// on the call gets no redundant reminders, and speech never interrupts a
// live meeting.
func (e *Engine) sendAlert(active *models.ActiveEvent, minutes int, startTier bool) {
	inCall := e.Presence != nil && e.Presence.InUse()

	notify := true
	if inCall {
		if startTier {
			notify = !e.SuppressStartWhenBusy
		} else {
			notify = false
		}
	}
	if !notify {
		log.Printf("Skipping %d minute notification for \"%s\", already in a call", minutes, active.Summary)
	}

	if minutes <= 0 {
		if notify && e.Notifier != nil {
			e.Notifier.Send("Call has just started", active.Summary, "", active.VideoLink)
		}
		if !inCall && e.Speaker != nil {
			e.Speaker.Say(fmt.Sprintf("Your call %q has just started", active.Summary))
		}
		return
	}

	minuteWord := "minutes"
	if minutes == 1 {
		minuteWord = "minute"
	}
	if notify && e.Notifier != nil {
		e.Notifier.Send(
			fmt.Sprintf("Call started %d %s ago", minutes, minuteWord),
			active.Summary, "", active.VideoLink)
	}
	if !inCall && e.Speaker != nil {
		e.Speaker.Say(fmt.Sprintf("Your call %q started %s %s ago, join it now!",
			active.Summary, intAsWord(minutes), minuteWord))
	}
}

// intAsWord spells out small numbers so synthesized speech reads naturally.
func intAsWord(n int) string {
	words := []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	if n >= 0 && n < len(words) {
		return words[n]
	}
	return fmt.Sprintf("%d", n)
}
