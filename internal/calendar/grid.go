package calendar

import (
	"time"

	"github.com/cannarn/Sched-Shifter/pkg/dateutil"
)

// DaysPerWeek is the width of a grid row
const DaysPerWeek = 7

// Monday-first column indexes
const (
	ColMonday = iota
	ColTuesday
	ColWednesday
	ColThursday
	ColFriday
	ColSaturday
	ColSunday
)

// WeekRow is one Monday..Sunday row of a month grid
type WeekRow [DaysPerWeek]Date

// Saturday returns the row's Saturday, which may belong to an adjacent month
func (r WeekRow) Saturday() Date {
	return r[ColSaturday]
}

// DaysIn returns the row's days that belong to the given month, in order
func (r WeekRow) DaysIn(year int, month time.Month) []Date {
	days := make([]Date, 0, DaysPerWeek)
	for _, d := range r {
		if d.In(year, month) {
			days = append(days, d)
		}
	}
	return days
}

// Grid is the Monday-first view of a month: complete weeks,
// padded with days from the adjacent months
type Grid struct {
	Year  int
	Month time.Month
	Rows  []WeekRow
}

// MonthGrid builds the grid for the month. Every row holds at least
// one day of the month.
func MonthGrid(year int, month time.Month) Grid {
	first := dateutil.FirstOfMonth(year, month)
	last := dateutil.LastOfMonth(year, month)

	start := DateOf(dateutil.StartOfWeek(first))
	end := DateOf(dateutil.EndOfWeek(last))

	weeks := (start.DaysUntil(end) + 1) / DaysPerWeek
	rows := make([]WeekRow, 0, weeks)
	for day := start; !day.After(end); day = day.AddDays(DaysPerWeek) {
		var row WeekRow
		for i := range row {
			row[i] = day.AddDays(i)
		}
		rows = append(rows, row)
	}

	return Grid{Year: year, Month: month, Rows: rows}
}

// Contains reports whether the day belongs to the grid's month (not padding)
func (g Grid) Contains(d Date) bool {
	return d.In(g.Year, g.Month)
}

// Days returns all days of the month in order
func (g Grid) Days() []Date {
	days := make([]Date, 0, dateutil.DaysIn(g.Year, g.Month))
	for _, row := range g.Rows {
		days = append(days, row.DaysIn(g.Year, g.Month)...)
	}
	return days
}

// Saturdays returns the month's Saturdays in order
func (g Grid) Saturdays() []Date {
	var saturdays []Date
	for _, row := range g.Rows {
		if sat := row.Saturday(); g.Contains(sat) {
			saturdays = append(saturdays, sat)
		}
	}
	return saturdays
}
