// File: internal/report/format.go
package report

import "fmt"

// Point is one labelled value of a chart-ready series.
type Point struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Chart is the shape a charting component consumes directly.
type Chart struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// WeekLabel renders an ISO week as "2024-W09".
func WeekLabel(year, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthLabel renders a month as "2024-3"; the month is not padded.
func MonthLabel(year, month int) string {
	return fmt.Sprintf("%d-%d", year, month)
}

// FormatHours renders hours with exactly two decimals.
func FormatHours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}

// WeeklySeries labels weekly buckets, keeping their order.
func WeeklySeries(buckets []Bucket) []Point {
	return series(buckets, WeekLabel)
}

// MonthlySeries labels monthly buckets, keeping their order.
func MonthlySeries(buckets []Bucket) []Point {
	return series(buckets, MonthLabel)
}

func series(buckets []Bucket, label func(year, period int) string) []Point {
	out := make([]Point, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, Point{
			Label:   label(b.Year, b.Period),
			Value:   b.Hours,
			Display: FormatHours(b.Hours),
		})
	}
	return out
}

// ToChart splits a series into parallel label and data slices.
func ToChart(points []Point) Chart {
	c := Chart{Labels: make([]string, 0, len(points)), Data: make([]float64, 0, len(points))}
	for _, p := range points {
		c.Labels = append(c.Labels, p.Label)
		c.Data = append(c.Data, p.Value)
	}
	return c
}
