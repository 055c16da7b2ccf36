package load

import "time"

// Range is an inclusive calendar-day range. A zero Start or End leaves that
// side unbounded, so Lifetime() contains every day.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether day falls inside the range.
func (r Range) Contains(day time.Time) bool {
	d := Day(day)
	if !r.Start.IsZero() && d.Before(Day(r.Start)) {
		return false
	}
	if !r.End.IsZero() && d.After(Day(r.End)) {
		return false
	}
	return true
}

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday of the week containing d.
func StartOfWeek(d time.Time) time.Time {
	day := Day(d)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekOf returns the Monday–Sunday calendar week containing d.
func WeekOf(d time.Time) Range {
	start := StartOfWeek(d)
	return Range{Start: start, End: start.AddDate(0, 0, 6)}
}

// MonthOf returns the calendar month containing d.
func MonthOf(d time.Time) Range {
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: start, End: start.AddDate(0, 1, -1)}
}

// YearOf returns the calendar year containing d.
func YearOf(d time.Time) Range {
	start := time.Date(d.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: start, End: start.AddDate(1, 0, -1)}
}

// Lifetime returns the unbounded range.
func Lifetime() Range {
	return Range{}
}

// AcuteWindow is the trailing 7-day window for the week starting at
// weekStart: the week itself, both endpoints inclusive.
func AcuteWindow(weekStart time.Time) Range {
	start := Day(weekStart)
	return Range{Start: start, End: start.AddDate(0, 0, 6)}
}

// ChronicWindow is the 4 full weeks (28 days) immediately before weekStart.
func ChronicWindow(weekStart time.Time) Range {
	start := Day(weekStart)
	return Range{Start: start.AddDate(0, 0, -28), End: start.AddDate(0, 0, -1)}
}
