// File: internal/worktime/duration.go
package worktime

import (
	"errors"
	"math"
)

var (
	ErrNegativeBreak  = errors.New("break minutes must be a non-negative number")
	ErrEndBeforeStart = errors.New("end time must be after start time")
	ErrBreakTooLong   = errors.New("break is longer than the worked span")
)

// Validate reports why an entry would not yield a non-negative duration.
func Validate(start, end Clock, breakMinutes int) error {
	if breakMinutes < 0 {
		return ErrNegativeBreak
	}
	if end <= start {
		return ErrEndBeforeStart
	}
	if breakMinutes*60 > int(end-start) {
		return ErrBreakTooLong
	}
	return nil
}

// Hundredths returns the worked time in hundredths of an hour, rounded half
// away from zero. Sums of these values are exact.
func Hundredths(start, end Clock, breakMinutes int) int64 {
	seconds := int64(end-start) - int64(breakMinutes)*60
	return int64(math.Round(float64(seconds) / 36))
}

// Hours is (end - start - break) in hours, rounded to 2 decimals.
func Hours(start, end Clock, breakMinutes int) (float64, error) {
	if err := Validate(start, end, breakMinutes); err != nil {
		return 0, err
	}
	return FromHundredths(Hundredths(start, end, breakMinutes)), nil
}

// FromHundredths converts an integer hundredths-of-an-hour amount to hours.
func FromHundredths(h int64) float64 {
	return float64(h) / 100
}

// Round2 rounds a number of hours to 2 decimals.
func Round2(h float64) float64 {
	return math.Round(h*100) / 100
}
