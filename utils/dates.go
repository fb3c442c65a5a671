package utils

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Historical records carry dates in more than one shape; ParseDate tries the
// canonical ISO layout first and a couple of legacy ones after.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05Z07:00",
	"02/01/2006",
}

// ParseDate parses a calendar date string, truncated to the day.
func ParseDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// Day truncates a time to midnight UTC so dates compare as whole days.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current date truncated to the day.
func Today() time.Time {
	return Day(time.Now())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekRange returns the Monday and Sunday of the week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	d := Day(t)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the week, it does not open it
	}
	start := d.AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 6)
}

// MonthRange returns the first and last day of the month containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	d := Day(t)
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}
