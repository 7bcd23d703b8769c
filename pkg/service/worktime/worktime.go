package worktime

import (
	"fmt"
	"strings"
	"time"
)

// Calculator measures elapsed duration between two timestamps counting only
// working days. Two weekdays are designated as the weekend and contribute
// nothing; partial days at the interval boundaries are weighted by the
// actual time covered.
type Calculator struct {
	weekend map[time.Weekday]bool
}

// New creates a Calculator with the given weekend days. Called with no
// arguments it uses the Friday/Saturday weekend of the source locale.
func New(weekend ...time.Weekday) *Calculator {
	if len(weekend) == 0 {
		weekend = []time.Weekday{time.Friday, time.Saturday}
	}

	days := make(map[time.Weekday]bool, len(weekend))
	for _, d := range weekend {
		days[d] = true
	}
	return &Calculator{weekend: days}
}

// IsWorkingDay reports whether the day of t is a working day
func (c *Calculator) IsWorkingDay(t time.Time) bool {
	return !c.weekend[t.Weekday()]
}

// Duration returns the working-time duration between start and end. Invalid
// or inverted intervals yield zero rather than an error.
func (c *Calculator) Duration(start, end time.Time) time.Duration {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return 0
	}

	startDay := startOfDay(start)
	endDay := startOfDay(end)

	// Same calendar day: the shared interval counts once, or not at all
	if startDay.Equal(endDay) {
		if c.IsWorkingDay(start) {
			return end.Sub(start)
		}
		return 0
	}

	var total time.Duration
	if c.IsWorkingDay(start) {
		total += startDay.AddDate(0, 0, 1).Sub(start)
	}
	for day := startDay.AddDate(0, 0, 1); day.Before(endDay); day = day.AddDate(0, 0, 1) {
		if c.IsWorkingDay(day) {
			total += 24 * time.Hour
		}
	}
	if c.IsWorkingDay(end) {
		total += end.Sub(endDay)
	}

	return total
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Format renders a duration as "{days}d {hours}h". Whole 24-hour blocks
// become days, the integer-hour remainder follows; the hour component is
// shown whenever it is non-zero or there are no days.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	totalHours := int(d.Hours())
	days := totalHours / 24
	hours := totalHours % 24

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days == 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if len(parts) == 0 {
		return "0h"
	}

	return strings.Join(parts, " ")
}
