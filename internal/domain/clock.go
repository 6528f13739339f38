package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used everywhere a date is stored or
// compared: in the Ramadan table, in dedup markers, and in the Al Adhan client.
const DateLayout = "2006-01-02"

var ErrInvalidClock = errors.New("invalid clock value")

// Clock is a time of day as minutes since midnight (0..1439).
// All offset and lead arithmetic happens in this space so that borrows and
// carries across hour and day boundaries need no special casing.
type Clock int

// ParseClock parses a zero-padded "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: hour in %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: minute in %q", ErrInvalidClock, s)
	}
	return Clock(h*60 + m), nil
}

// MustClock is ParseClock for the static tables; it panics on malformed input.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockOf extracts the minute-granularity time of day from t.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// Add shifts the clock by delta minutes, wrapping around midnight in either
// direction. A total below zero borrows a day (05:00 - 360m = 23:00), a total
// past 24h wraps forward.
func (c Clock) Add(delta int) Clock {
	total := (int(c) + delta) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return Clock(total)
}

// Sub returns the signed minute distance from other to c.
func (c Clock) Sub(other Clock) int {
	return int(c) - int(other)
}

// String renders the clock as zero-padded "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}
