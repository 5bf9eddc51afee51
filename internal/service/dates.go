package service

import "time"

// DateOnly truncates a timestamp to its calendar date in UTC. Deadlines and
// generated-task dates are always stored in this form so equality checks and
// day arithmetic are exact.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day difference to − from.
func daysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// WeekStart returns the Monday of the week containing t, date-only.
func WeekStart(t time.Time) time.Time {
	d := DateOnly(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDate(0, 0, -offset)
}
