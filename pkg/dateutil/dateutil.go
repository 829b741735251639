package dateutil

import (
	"fmt"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	return StartOfDay(date.AddDate(0, 0, -WeekdayIndex(date.Weekday())))
}

// EndOfWeek returns the Sunday of the week for the given date (start of day)
func EndOfWeek(date time.Time) time.Time {
	return StartOfWeek(date).AddDate(0, 0, 6)
}

// WeekdayIndex converts a weekday to a Monday-first index (Monday=0 ... Sunday=6)
func WeekdayIndex(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}

// FirstOfMonth returns midnight UTC of the first day of the month
func FirstOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// LastOfMonth returns midnight UTC of the last day of the month
func LastOfMonth(year int, month time.Month) time.Time {
	return FirstOfMonth(year, month).AddDate(0, 1, -1)
}

// DaysIn returns the number of days in the month
func DaysIn(year int, month time.Month) int {
	return LastOfMonth(year, month).Day()
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a. Time of day and location are ignored.
func DaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int((ub.Unix() - ua.Unix()) / secondsPerDay)
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"01/02/2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z07:00",
	}

	dateStr = strings.TrimSpace(dateStr)
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}
