package calendar

import (
	"strings"
	"unicode"
)

// conferencingDomains are the hosts recognized when scanning free-text
// descriptions for a joinable link.
var conferencingDomains = []string{
	"zoom.us",
	"meet.google.com",
	"teams.microsoft.com",
	"webex.com",
	"gotomeeting.com",
}

// videoLink resolves the joinable call URL for an entry. The precedence is
// fixed: the Google conferencing property wins over a generic URL property,
// which wins over an http LOCATION, which wins over a link scraped from the
// DESCRIPTION. An empty result means the entry is not a video call.
func videoLink(conference, url, location, description string) string {
	if strings.HasPrefix(conference, "http") {
		return conference
	}
	if strings.HasPrefix(url, "http") {
		return url
	}
	if strings.HasPrefix(location, "http") {
		return location
	}
	return descriptionLink(description)
}

// descriptionLink scans the description line by line and returns the URL on
// the first line mentioning a known conferencing domain: the substring from
// the first "http" to the next whitespace.
func descriptionLink(description string) string {
	for _, line := range strings.Split(description, "\n") {
		if !mentionsConferencing(line) {
			continue
		}
		start := strings.Index(line, "http")
		if start < 0 {
			continue
		}
		rest := line[start:]
		if end := strings.IndexFunc(rest, unicode.IsSpace); end >= 0 {
			rest = rest[:end]
		}
		return rest
	}
	return ""
}

func mentionsConferencing(line string) bool {
	for _, domain := range conferencingDomains {
		if strings.Contains(line, domain) {
			return true
		}
	}
	return false
}
