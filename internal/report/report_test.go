package report

import (
	"bytes"
	"testing"
	"time"

	"urenregistratie/internal/model"
	"urenregistratie/internal/worktime"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func entry(date, start, end string, brk int) model.TimeEntry {
	d, err := time.Parse(model.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return model.TimeEntry{
		Date:         d,
		StartTime:    worktime.MustClock(start),
		EndTime:      worktime.MustClock(end),
		BreakMinutes: brk,
	}
}

func TestWeeklySameWeek(t *testing.T) {
	// Monday and Wednesday of ISO week 2024-W10.
	got := Weekly([]model.TimeEntry{
		entry("2024-03-04", "09:00", "17:00", 30),
		entry("2024-03-06", "08:00", "16:30", 30),
	})
	require.Equal(t, []Bucket{{Year: 2024, Period: 10, Hours: 15.5}}, got)
}

func TestWeeklyUsesISOYearAndMondayStart(t *testing.T) {
	got := Weekly([]model.TimeEntry{
		entry("2024-12-30", "09:00", "10:00", 0), // Monday, ISO 2025-W01
		entry("2024-12-29", "09:00", "11:00", 0), // Sunday, ISO 2024-W52
		entry("2025-01-05", "09:00", "12:00", 0), // Sunday, ISO 2025-W01
	})
	require.Equal(t, []Bucket{
		{Year: 2025, Period: 1, Hours: 4},
		{Year: 2024, Period: 52, Hours: 2},
	}, got)
}

func TestMonthlyOrdering(t *testing.T) {
	got := Monthly([]model.TimeEntry{
		entry("2023-12-01", "09:00", "10:00", 0),
		entry("2024-02-10", "09:00", "10:30", 0),
		entry("2024-11-03", "09:00", "09:15", 0),
		entry("2024-02-11", "09:00", "10:00", 0),
	})
	require.Equal(t, []Bucket{
		{Year: 2024, Period: 11, Hours: 0.25},
		{Year: 2024, Period: 2, Hours: 2.5},
		{Year: 2023, Period: 12, Hours: 1},
	}, got)
}

func TestWeeklySumsMatchMonthly(t *testing.T) {
	// February 2021 starts on a Monday and spans exactly four ISO weeks.
	var entries []model.TimeEntry
	starts := []string{"07:13", "08:00", "09:07", "10:29"}
	ends := []string{"15:41", "12:20", "17:59", "11:00"}
	for day := 1; day <= 28; day++ {
		d := time.Date(2021, 2, day, 0, 0, 0, 0, time.UTC).Format(model.DateLayout)
		i := day % len(starts)
		entries = append(entries, entry(d, starts[i], ends[i], day%3*10))
	}

	weekly := Weekly(entries)
	require.Len(t, weekly, 4)
	var weekSum int64
	for _, b := range weekly {
		weekSum += int64(b.Hours*100 + 0.5)
	}

	monthly := Monthly(entries)
	require.Len(t, monthly, 1)
	require.Equal(t, int64(monthly[0].Hours*100+0.5), weekSum)
	require.Equal(t, Total(entries), monthly[0].Hours)
}

func TestEmptyInput(t *testing.T) {
	require.NotNil(t, Weekly(nil))
	require.Empty(t, Weekly(nil))
	require.Empty(t, Monthly([]model.TimeEntry{}))
	require.Empty(t, WeeklySeries(nil))
	require.Zero(t, Total(nil))
}

func TestSeries(t *testing.T) {
	weekly := WeeklySeries([]Bucket{{Year: 2024, Period: 9, Hours: 15.5}, {Year: 2024, Period: 3, Hours: 7.333}})
	require.Equal(t, []Point{
		{Label: "2024-W09", Value: 15.5, Display: "15.50"},
		{Label: "2024-W03", Value: 7.333, Display: "7.33"},
	}, weekly)

	monthly := MonthlySeries([]Bucket{{Year: 2024, Period: 11, Hours: 1}, {Year: 2024, Period: 2, Hours: 0.25}})
	require.Equal(t, "2024-11", monthly[0].Label)
	require.Equal(t, "2024-2", monthly[1].Label)
	require.Equal(t, "0.25", monthly[1].Display)

	chart := ToChart(weekly)
	require.Equal(t, []string{"2024-W09", "2024-W03"}, chart.Labels)
	require.Equal(t, []float64{15.5, 7.333}, chart.Data)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	weekly := WeeklySeries([]Bucket{{Year: 2024, Period: 10, Hours: 15.5}})
	monthly := MonthlySeries([]Bucket{{Year: 2024, Period: 3, Hours: 15.5}, {Year: 2024, Period: 2, Hours: 4}})
	require.NoError(t, WriteXLSX(&buf, weekly, monthly))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(WeeklySheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"Week", "Hours"}, rows[0])
	require.Equal(t, "2024-W10", rows[1][0])

	rows, err = f.GetRows(MonthlySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "2024-2", rows[2][0])
}
