// File: internal/report/aggregate.go

// Package report groups time entries into weekly and monthly totals and
// shapes them for display.
package report

import (
	"sort"

	"urenregistratie/internal/model"
	"urenregistratie/internal/worktime"
)

// Bucket is the summed duration of one period. Period is the ISO week for
// weekly buckets and the calendar month for monthly ones.
type Bucket struct {
	Year   int     `json:"year"`
	Period int     `json:"period"`
	Hours  float64 `json:"hours"`
}

type periodKey struct{ year, period int }

// Weekly groups entries by (ISO year, ISO week), Monday being the first day.
func Weekly(entries []model.TimeEntry) []Bucket {
	return aggregate(entries, func(e model.TimeEntry) periodKey {
		y, w := e.Date.ISOWeek()
		return periodKey{y, w}
	})
}

// Monthly groups entries by calendar (year, month).
func Monthly(entries []model.TimeEntry) []Bucket {
	return aggregate(entries, func(e model.TimeEntry) periodKey {
		return periodKey{e.Date.Year(), int(e.Date.Month())}
	})
}

// Total sums the duration of all entries.
func Total(entries []model.TimeEntry) float64 {
	var sum int64
	for _, e := range entries {
		sum += e.Hundredths()
	}
	return worktime.FromHundredths(sum)
}

// aggregate sums per-entry hundredths so bucket totals carry no float drift.
// Buckets come back newest first.
func aggregate(entries []model.TimeEntry, keyOf func(model.TimeEntry) periodKey) []Bucket {
	sums := make(map[periodKey]int64)
	for _, e := range entries {
		sums[keyOf(e)] += e.Hundredths()
	}

	out := make([]Bucket, 0, len(sums))
	for k, h := range sums {
		out = append(out, Bucket{Year: k.year, Period: k.period, Hours: worktime.FromHundredths(h)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Period > out[j].Period
	})
	return out
}
