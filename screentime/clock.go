package screentime

import (
	"fmt"
	"time"
)

// MinutesPerDay bounds every minute-of-day value: [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

// ParseClock parses a 24-hour "HH:MM" value into minutes since midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidInput, s)
	}
	h, okH := twoDigits(s[0], s[1])
	m, okM := twoDigits(s[3], s[4])
	if !okH || !okM || h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: time %q is not a valid 24-hour clock value", ErrInvalidInput, s)
	}
	return h*60 + m, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// MinuteOfDay returns t's wall-clock time in its own location as minutes since
// midnight. Seconds are truncated.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// InBedtime reports whether minute t falls inside the window [start, end].
// Both ends are inclusive. start > end wraps past midnight. start == end is
// treated as no window at all.
func InBedtime(start, end, t int) bool {
	switch {
	case start == end:
		return false
	case start < end:
		return start <= t && t <= end
	default:
		return t >= start || t <= end
	}
}

// IsWeekend reports whether t falls on Saturday or Sunday in t's location.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
