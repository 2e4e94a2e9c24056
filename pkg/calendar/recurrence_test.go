package calendar

import (
	"testing"
	"time"

	"nextcall/pkg/models"
)

func TestExpandRecurringEvent(t *testing.T) {
	base := models.Event{
		ID:        "daily@test",
		Summary:   "Daily standup",
		StartTime: time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2030, 6, 1, 9, 15, 0, 0, time.UTC),
		VideoLink: "https://meet.google.com/abc",
	}

	windowStart := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2030, 6, 6, 0, 0, 0, 0, time.UTC)

	instances := expandRecurringEvent(base, "FREQ=DAILY", windowStart, windowEnd)
	if len(instances) != 3 {
		t.Fatalf("got %d instances, want 3", len(instances))
	}

	for i, instance := range instances {
		wantStart := time.Date(2030, 6, 3+i, 9, 0, 0, 0, time.UTC)
		if !instance.StartTime.Equal(wantStart) {
			t.Errorf("instance %d start = %s, want %s", i, instance.StartTime, wantStart)
		}
		if got := instance.EndTime.Sub(instance.StartTime); got != 15*time.Minute {
			t.Errorf("instance %d duration = %s, want 15m", i, got)
		}
		if instance.ID == base.ID {
			t.Errorf("instance %d kept the base ID", i)
		}
		if instance.VideoLink != base.VideoLink {
			t.Errorf("instance %d lost the video link", i)
		}
	}
}

func TestExpandRecurringEventBadRule(t *testing.T) {
	base := models.Event{
		ID:        "weird@test",
		StartTime: time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	if got := expandRecurringEvent(base, "FREQ=FORTNIGHTLY", base.StartTime, base.StartTime.Add(time.Hour)); len(got) != 0 {
		t.Errorf("got %d instances from an unparseable rule, want 0", len(got))
	}
}
