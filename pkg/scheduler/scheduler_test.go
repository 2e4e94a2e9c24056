package scheduler

import (
	"testing"
	"time"

	"nextcall/pkg/models"
)

func eventAt(start time.Time) *models.Event {
	return &models.Event{
		Summary:   "Planning",
		StartTime: start,
		VideoLink: "https://zoom.us/j/123",
	}
}

func TestStepNoEvent(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	decision := Step(nil, now)
	if decision.IconText != FarFutureIcon {
		t.Errorf("icon = %q, want %q", decision.IconText, FarFutureIcon)
	}
	if decision.Wait != DefaultInterval {
		t.Errorf("wait = %s, want %s", decision.Wait, DefaultInterval)
	}
	if decision.Started != nil {
		t.Error("started should be nil")
	}
}

func TestStepCountdown(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 30, 0, time.UTC)

	tests := []struct {
		name     string
		delta    time.Duration
		wantIcon string
		wantWait time.Duration
	}{
		// floor, not round: 61s is still one whole minute
		{"sixty-one seconds", 61 * time.Second, "1", 30 * time.Second},
		{"under a minute", 45 * time.Second, "0", 30 * time.Second},
		{"start sooner than next minute", 10 * time.Second, "0", 10 * time.Second},
		{"forty-five minutes", 45 * time.Minute, "45", 30 * time.Second},
		{"sixty minutes still shows the digit", 60*time.Minute + 30*time.Second, "60", 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Step(eventAt(now.Add(tt.delta)), now)
			if decision.IconText != tt.wantIcon {
				t.Errorf("icon = %q, want %q", decision.IconText, tt.wantIcon)
			}
			if decision.Wait != tt.wantWait {
				t.Errorf("wait = %s, want %s", decision.Wait, tt.wantWait)
			}
			if decision.Started != nil {
				t.Error("started should be nil")
			}
		})
	}
}

func TestStepFarFuture(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	// Sixty-one minutes out: far-future marker, and the wait lands exactly
	// on the moment the countdown window opens.
	decision := Step(eventAt(now.Add(61*time.Minute)), now)
	if decision.IconText != FarFutureIcon {
		t.Errorf("icon = %q, want %q", decision.IconText, FarFutureIcon)
	}
	if decision.Wait != time.Minute {
		t.Errorf("wait = %s, want 1m", decision.Wait)
	}

	// Well beyond the window the default interval caps the wait.
	decision = Step(eventAt(now.Add(5*time.Hour)), now)
	if decision.Wait != DefaultInterval {
		t.Errorf("wait = %s, want %s", decision.Wait, DefaultInterval)
	}
}

func TestStepStarted(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	decision := Step(eventAt(now.Add(-3*time.Minute-30*time.Second)), now)
	if decision.Started == nil {
		t.Fatal("started should be set")
	}
	if decision.IconText != "-3" {
		t.Errorf("icon = %q, want -3", decision.IconText)
	}
}

func TestStepWaitNeverExceedsDefaultInterval(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 17, 0, time.UTC)

	for _, delta := range []time.Duration{
		-9 * time.Minute,
		0,
		30 * time.Second,
		59 * time.Minute,
		61 * time.Minute,
		48 * time.Hour,
	} {
		decision := Step(eventAt(now.Add(delta)), now)
		if decision.Wait < 0 || decision.Wait > DefaultInterval {
			t.Errorf("delta %s: wait %s outside [0, %s]", delta, decision.Wait, DefaultInterval)
		}
	}
}
