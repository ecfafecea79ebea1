// File: internal/model/time_entry.go
package model

import (
	"time"

	"urenregistratie/internal/worktime"
)

const DateLayout = "2006-01-02"

type TimeEntry struct {
	ID           int            `db:"id" json:"id"`
	UserID       int            `db:"user_id" json:"user_id"`
	Date         time.Time      `db:"date" json:"date"`
	StartTime    worktime.Clock `db:"start_time" json:"start_time"`
	EndTime      worktime.Clock `db:"end_time" json:"end_time"`
	BreakMinutes int            `db:"break_minutes" json:"break_minutes"`
	Description  *string        `db:"description" json:"description,omitempty"`
	Project      *string        `db:"project" json:"project,omitempty"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

// Hundredths is the entry's duration in hundredths of an hour.
func (e TimeEntry) Hundredths() int64 {
	return worktime.Hundredths(e.StartTime, e.EndTime, e.BreakMinutes)
}

// Hours is the entry's duration rounded to 2 decimals.
func (e TimeEntry) Hours() float64 {
	return worktime.FromHundredths(e.Hundredths())
}

// EntryFilter narrows a listing. Zero values mean "no constraint".
// Project is matched exactly; From and To are inclusive dates.
type EntryFilter struct {
	UserID  int
	Project string
	From    *time.Time
	To      *time.Time
}
