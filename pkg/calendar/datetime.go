package calendar

import (
	"strings"
	"time"
)

// Map of common Windows timezone names to IANA timezone names
var windowsToIANA = map[string]string{
	"Pacific Standard Time":        "America/Los_Angeles",
	"Mountain Standard Time":       "America/Denver",
	"Central Standard Time":        "America/Chicago",
	"Eastern Standard Time":        "America/New_York",
	"Atlantic Standard Time":       "America/Halifax",
	"Alaskan Standard Time":        "America/Anchorage",
	"Hawaiian Standard Time":       "Pacific/Honolulu",
	"GMT Standard Time":            "Europe/London",
	"Central Europe Standard Time": "Europe/Paris",
	"China Standard Time":          "Asia/Shanghai",
	"Tokyo Standard Time":          "Asia/Tokyo",
	"India Standard Time":          "Asia/Kolkata",
	"AUS Eastern Standard Time":    "Australia/Sydney",
}

// normalizeDateTime parses a raw DTSTART value into an absolute instant.
// Separator punctuation is stripped first, then three forms are tried in
// order: a 15-digit wall clock qualified by a TZID parameter, a
// UTC-suffixed wall clock, and a bare 8-digit date (midnight UTC).
// Anything else, including an unknown TZID, yields ok == false and the
// entry is dropped rather than reported as an error.
func normalizeDateTime(value, tzid string) (time.Time, bool) {
	cleaned := strings.NewReplacer("-", "", ":", "").Replace(value)

	if tzid != "" {
		return zonedDateTime(cleaned, tzid)
	}

	// UTC datetime, e.g. 20231225T120000Z
	if strings.Contains(cleaned, "T") && strings.HasSuffix(cleaned, "Z") {
		if t, err := time.Parse("20060102T150405Z", cleaned); err == nil {
			return t, true
		}
		return time.Time{}, false
	}

	// Date only, e.g. 20231225
	if len(cleaned) == 8 {
		if t, err := time.Parse("20060102", cleaned); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// zonedDateTime interprets the leading YYYYMMDDTHHMMSS digits as a wall
// clock in the named zone and resolves it to the earliest matching instant.
func zonedDateTime(cleaned, tzid string) (time.Time, bool) {
	if !strings.Contains(cleaned, "T") || len(cleaned) < 15 {
		return time.Time{}, false
	}

	naive, err := time.Parse("20060102T150405", cleaned[:15])
	if err != nil {
		return time.Time{}, false
	}

	loc, ok := loadZone(tzid)
	if !ok {
		return time.Time{}, false
	}

	return earliestInZone(naive, loc)
}

// loadZone resolves a TZID to a *time.Location, translating common
// Windows timezone names to their IANA equivalents first.
func loadZone(tzid string) (*time.Location, bool) {
	if iana, ok := windowsToIANA[tzid]; ok {
		tzid = iana
	}
	loc, err := time.LoadLocation(tzid)
	if err != nil {
		return nil, false
	}
	return loc, true
}

// earliestInZone maps a naive wall clock onto loc, taking the earliest
// matching instant. A wall clock that does not exist in loc (DST
// spring-forward gap) has no match and is rejected; an ambiguous one
// (fall-back fold) resolves to the earlier of its two instants.
func earliestInZone(naive time.Time, loc *time.Location) (time.Time, bool) {
	t := time.Date(naive.Year(), naive.Month(), naive.Day(),
		naive.Hour(), naive.Minute(), naive.Second(), 0, loc)

	// time.Date normalizes a nonexistent wall clock to a different
	// reading; that means the input fell inside a DST gap.
	if !sameWallClock(t, naive) {
		return time.Time{}, false
	}

	// During a fold the same reading occurs again one hour later; if the
	// instant an hour earlier shows the same wall clock, it is the
	// earlier occurrence.
	if alt := t.Add(-time.Hour); sameWallClock(alt, naive) {
		t = alt
	}

	return t, true
}

func sameWallClock(t, naive time.Time) bool {
	return t.Day() == naive.Day() &&
		t.Hour() == naive.Hour() &&
		t.Minute() == naive.Minute() &&
		t.Second() == naive.Second()
}
