// Package clock provides time-of-day values detached from any calendar date.
// Bedtime math only needs the position on a 24h dial, so values are modeled
// as hour/minute pairs and arithmetic wraps across midnight.
package clock

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// TimeOfDay is a wall-clock position without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Parse converts an "HH:MM" string to a TimeOfDay.
func Parse(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}

	return TimeOfDay{Hour: h, Minute: m}, nil
}

// FromSecondsOfDay builds a TimeOfDay from seconds since midnight, wrapping
// values outside [0, 86400).
func FromSecondsOfDay(sec int) TimeOfDay {
	sec = mod(sec, secondsPerDay)
	// Sub-minute precision is dropped; the dial is minute-grained.
	minutes := sec / 60
	return TimeOfDay{Hour: minutes / 60, Minute: minutes % 60}
}

// String formats the value as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// SecondsOfDay returns seconds elapsed since midnight.
func (t TimeOfDay) SecondsOfDay() int {
	return (t.Hour*60 + t.Minute) * 60
}

// Sub moves the value back by d, wrapping across midnight. Durations are
// rounded to the nearest second before subtracting.
func (t TimeOfDay) Sub(d time.Duration) TimeOfDay {
	sec := int(math.Round(d.Seconds()))
	return FromSecondsOfDay(t.SecondsOfDay() - sec)
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
