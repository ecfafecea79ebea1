// File: internal/worktime/clock.go

// Package worktime computes worked hours from wall-clock start/end times.
//
// All values are naive local times on a single calendar date; nothing here
// knows about time zones or entries that cross midnight.
package worktime

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const secondsPerDay = 24 * 60 * 60

// Clock is a time of day expressed as seconds since midnight.
type Clock int

// NewClock builds a Clock from hour, minute and second components.
func NewClock(hour, minute, second int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, fmt.Errorf("invalid clock %02d:%02d:%02d", hour, minute, second)
	}
	return Clock(hour*3600 + minute*60 + second), nil
}

// ParseClock accepts "15:04" or "15:04:05".
func ParseClock(s string) (Clock, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewClock(t.Hour(), t.Minute(), t.Second())
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

// MustClock is ParseClock for literals known to be valid.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hour, Minute and Second split the clock into its components.
func (c Clock) Hour() int   { return int(c) / 3600 }
func (c Clock) Minute() int { return int(c) % 3600 / 60 }
func (c Clock) Second() int { return int(c) % 60 }

// String renders HH:MM, adding :SS only when seconds are present.
func (c Clock) String() string {
	if c.Second() != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
	}
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// PgTime converts to the value pgx writes into a TIME column.
func (c Clock) PgTime() pgtype.Time {
	return pgtype.Time{Microseconds: int64(c) * int64(time.Second/time.Microsecond), Valid: true}
}

// ClockFromPgTime converts a scanned TIME column back into a Clock.
func ClockFromPgTime(t pgtype.Time) (Clock, error) {
	if !t.Valid {
		return 0, fmt.Errorf("null time of day")
	}
	secs := t.Microseconds / int64(time.Second/time.Microsecond)
	if secs < 0 || secs >= secondsPerDay {
		return 0, fmt.Errorf("time of day out of range: %d", secs)
	}
	return Clock(secs), nil
}
