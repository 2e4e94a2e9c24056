package calendar

import "testing"

func TestVideoLinkPrecedence(t *testing.T) {
	tests := []struct {
		name        string
		conference  string
		url         string
		location    string
		description string
		want        string
	}{
		{
			name:       "conference field wins over url",
			conference: "https://meet.google.com/abc-defg-hij",
			url:        "https://zoom.us/j/123",
			want:       "https://meet.google.com/abc-defg-hij",
		},
		{
			name:     "url wins over location",
			url:      "https://zoom.us/j/123",
			location: "https://teams.microsoft.com/l/meetup",
			want:     "https://zoom.us/j/123",
		},
		{
			name:        "location wins over description",
			location:    "https://zoom.us/j/456",
			description: "Join: https://zoom.us/j/789",
			want:        "https://zoom.us/j/456",
		},
		{
			name:        "description scraped last",
			description: "Agenda\nJoin here: https://zoom.us/j/789?pwd=x tap in\nThanks",
			want:        "https://zoom.us/j/789?pwd=x",
		},
		{
			name:       "non-http conference field ignored",
			conference: "meet.google.com/abc",
			url:        "https://zoom.us/j/123",
			want:       "https://zoom.us/j/123",
		},
		{
			name:     "non-http location ignored",
			location: "Conference Room 4",
			want:     "",
		},
		{
			name:        "description without known domain ignored",
			description: "Join at https://example.com/call",
			want:        "",
		},
		{
			name:        "description link runs to end of line",
			description: "https://meet.google.com/abc-defg-hij",
			want:        "https://meet.google.com/abc-defg-hij",
		},
		{
			name: "nothing resolvable",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := videoLink(tt.conference, tt.url, tt.location, tt.description)
			if got != tt.want {
				t.Errorf("videoLink() = %q, want %q", got, tt.want)
			}
		})
	}
}
