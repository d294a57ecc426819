package domain

import "fmt"

// MinutesPerDay is the wrap boundary for wall-clock-of-day values.
const MinutesPerDay = 1440

// Clock is a wall-clock-of-day value in minutes since midnight.
// Arithmetic wraps at 24h, so 23:50 + 20min = 00:10.
type Clock int

// NewClock builds a Clock from hours and minutes, normalized into a day.
func NewClock(hours, minutes int) Clock {
	return Clock(((hours*60+minutes)%MinutesPerDay + MinutesPerDay) % MinutesPerDay)
}

// ParseClock parses "HH:MM" (24-hour) into a Clock.
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parsing clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return NewClock(h, m), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Add returns the clock advanced by the given number of minutes, wrapping at midnight.
func (c Clock) Add(minutes int) Clock {
	return Clock(((int(c)+minutes)%MinutesPerDay + MinutesPerDay) % MinutesPerDay)
}

// DurationTo returns the forward minutes from c to next, wrapping at 24h
// when next is numerically smaller. The result is always in [0, 1440).
func (c Clock) DurationTo(next Clock) int {
	d := int(next) - int(c)
	if d < 0 {
		d += MinutesPerDay
	}
	return d
}
