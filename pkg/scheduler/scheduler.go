package scheduler

import (
	"strconv"
	"time"

	"nextcall/pkg/models"
)

const (
	// DefaultInterval is the fallback poll wait used when no tighter
	// deadline applies. Every returned wait is bounded by it.
	DefaultInterval = 3 * time.Minute

	// FarFutureIcon is shown when the next call is over an hour away or
	// there is none.
	FarFutureIcon = "..."

	// countdownWindow is how close a call must be before the display
	// switches to a minute countdown.
	countdownWindow = 60
)

// Decision is the outcome of one poll: what to display and what to do
// next. When Started is non-nil the call is underway and the reminder
// engine owns the residual wait; otherwise the caller sleeps Wait.
type Decision struct {
	IconText string
	Wait     time.Duration
	Started  *models.Event
}

// Step computes the display label and adaptive wait for the next upcoming
// call (or none). The wait is chosen so call-start and display-tier
// deadlines are observed with near-minute precision while idle periods
// poll no faster than DefaultInterval:
//
//   - started calls surface immediately with the signed elapsed minutes;
//   - inside the countdown window, wake at the top of the next minute so
//     the displayed count is never more than a minute stale;
//   - beyond it, wake no later than the moment the countdown should begin.
func Step(next *models.Event, now time.Time) Decision {
	if next == nil {
		return Decision{IconText: FarFutureIcon, Wait: DefaultInterval}
	}

	delta := next.StartTime.Sub(now)
	minutesUntil := int(delta / time.Minute)

	if delta < 0 {
		return Decision{
			IconText: strconv.Itoa(minutesUntil),
			Wait:     DefaultInterval,
			Started:  next,
		}
	}

	if minutesUntil <= countdownWindow {
		return Decision{
			IconText: strconv.Itoa(minutesUntil),
			Wait:     boundWait(minDuration(delta, untilNextMinute(now))),
		}
	}

	untilCountdown := next.StartTime.Add(-countdownWindow * time.Minute).Sub(now)
	return Decision{
		IconText: FarFutureIcon,
		Wait:     boundWait(untilCountdown),
	}
}

// untilNextMinute returns the time remaining until the top of the next
// wall-clock minute.
func untilNextMinute(now time.Time) time.Duration {
	return now.Truncate(time.Minute).Add(time.Minute).Sub(now)
}

// boundWait clamps a wait into [0, DefaultInterval].
func boundWait(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > DefaultInterval {
		return DefaultInterval
	}
	return d
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
