package entities

import (
	"strconv"
	"strings"
	"time"
)

// ParsePortalDate parses the date strings that reach the portal:
// YYYY-MM-DD, full ISO timestamps, and the ambiguous slash form.
//
// Slash dates are treated as DD/MM/YYYY only when the first component cannot
// be a month (exceeds 12); otherwise MM/DD/YYYY is assumed.
func ParsePortalDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return time.Time{}, false
		}
		first, err1 := strconv.Atoi(parts[0])
		second, err2 := strconv.Atoi(parts[1])
		year, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, false
		}

		day, month := second, first
		if first > 12 {
			day, month = first, second
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BeforeDay reports whether t falls on a day strictly before ref,
// ignoring time of day.
func BeforeDay(t, ref time.Time) bool {
	ty, tm, td := t.Date()
	ry, rm, rd := ref.Date()
	day := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	refDay := time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC)
	return day.Before(refDay)
}
