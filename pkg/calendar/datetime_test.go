package calendar

import (
	"testing"
	"time"
)

func TestNormalizeDateTimeZoned(t *testing.T) {
	tests := []struct {
		name  string
		value string
		tzid  string
		want  string // RFC3339 in UTC
	}{
		{
			name:  "eastern standard offset",
			value: "20240115T090000",
			tzid:  "America/New_York",
			want:  "2024-01-15T14:00:00Z",
		},
		{
			name:  "eastern daylight offset",
			value: "20240315T090000",
			tzid:  "America/New_York",
			want:  "2024-03-15T13:00:00Z",
		},
		{
			name:  "separator punctuation stripped",
			value: "2024-03-15T09:00:00",
			tzid:  "America/New_York",
			want:  "2024-03-15T13:00:00Z",
		},
		{
			name:  "windows timezone name",
			value: "20240115T090000",
			tzid:  "Eastern Standard Time",
			want:  "2024-01-15T14:00:00Z",
		},
		{
			name:  "ambiguous fold resolves to earliest instant",
			value: "20241103T013000",
			tzid:  "America/New_York",
			want:  "2024-11-03T05:30:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeDateTime(tt.value, tt.tzid)
			if !ok {
				t.Fatalf("normalizeDateTime(%q, %q) not ok", tt.value, tt.tzid)
			}
			want, err := time.Parse(time.RFC3339, tt.want)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(want) {
				t.Errorf("normalizeDateTime(%q, %q) = %s, want %s",
					tt.value, tt.tzid, got.UTC().Format(time.RFC3339), tt.want)
			}
		})
	}
}

func TestNormalizeDateTimeUTCAndDateOnly(t *testing.T) {
	got, ok := normalizeDateTime("20231225T120000Z", "")
	if !ok {
		t.Fatal("UTC datetime not ok")
	}
	if want := time.Date(2023, 12, 25, 12, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("UTC datetime = %s, want %s", got, want)
	}

	got, ok = normalizeDateTime("2023-12-25", "")
	if !ok {
		t.Fatal("date-only not ok")
	}
	if want := time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("date-only = %s, want %s", got, want)
	}
}

func TestNormalizeDateTimeRejects(t *testing.T) {
	tests := []struct {
		name  string
		value string
		tzid  string
	}{
		{"unknown timezone id", "20240315T090000", "Middle/Earth"},
		{"nonexistent local time in DST gap", "20240310T023000", "America/New_York"},
		{"truncated zoned value", "20240315T09", "America/New_York"},
		{"garbage", "not a date", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := normalizeDateTime(tt.value, tt.tzid); ok {
				t.Errorf("normalizeDateTime(%q, %q) = %s, want not ok", tt.value, tt.tzid, got)
			}
		})
	}
}
