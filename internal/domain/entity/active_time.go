package entity

import (
	"time"

	"nudge/internal/errors"
)

// ClockLayout is the 24-hour "HH:MM" layout used by active windows.
const ClockLayout = "15:04"

// ErrInvalidClock is returned when a time-of-day is not a zero-padded "HH:MM" value.
var ErrInvalidClock = errors.New("time of day must be zero-padded HH:MM")

// ActiveTime is a same-day activation window. Both bounds are inclusive.
type ActiveTime struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether now ("HH:MM") lies within the window.
func (w ActiveTime) Contains(now string) (bool, error) {
	return InWindow(now, w.Start, w.End)
}

// InWindow reports whether start <= now <= end.
//
// Values are compared as strings, which for the fixed zero-padded layout equals numeric
// comparison. Windows that cross midnight (start > end) never match.
func InWindow(now, start, end string) (bool, error) {
	for _, v := range [...]string{now, start, end} {
		if !IsClock(v) {
			return false, errors.Wrapf(ErrInvalidClock, "got %q", v)
		}
	}

	return start <= now && now <= end, nil
}

// IsClock reports whether s is a valid zero-padded 24-hour "HH:MM" value.
func IsClock(s string) bool {
	if len(s) != len(ClockLayout) || s[2] != ':' {
		return false
	}
	for _, idx := range [...]int{0, 1, 3, 4} {
		if s[idx] < '0' || s[idx] > '9' {
			return false
		}
	}

	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')

	return hours < 24 && minutes < 60
}

// FormatClock renders t as "HH:MM" in t's location.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}
