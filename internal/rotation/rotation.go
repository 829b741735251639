// Package rotation derives a month of work and off days from the
// every-other-Saturday rotation seeded by the last Saturday worked.
package rotation

import (
	"fmt"
	"time"

	"github.com/cannarn/Sched-Shifter/internal/calendar"
	"github.com/cannarn/Sched-Shifter/pkg/dateutil"
)

// CadenceDays is the distance between two worked Saturdays
const CadenceDays = 14

// Schedule is the work/off assignment for the days of one month.
// It is never modified after Resolve returns it.
type Schedule struct {
	Year   int
	Month  time.Month
	Anchor calendar.Date
	Grid   calendar.Grid

	on       []calendar.Date
	off      []calendar.Date
	workdays map[calendar.Date]bool
}

// IsWorkday reports the assignment of a day. ok is false for days
// outside the schedule's month.
func (s *Schedule) IsWorkday(day calendar.Date) (isWorkday, ok bool) {
	isWorkday, ok = s.workdays[day]
	return isWorkday, ok
}

// Mapping returns a copy of the day -> is-work-day assignment
func (s *Schedule) Mapping() map[calendar.Date]bool {
	mapping := make(map[calendar.Date]bool, len(s.workdays))
	for day, isWorkday := range s.workdays {
		mapping[day] = isWorkday
	}
	return mapping
}

// OnSaturdays returns the worked Saturdays in ascending order.
// With a non-Saturday anchor the cadence part holds the shifted dates as-is.
func (s *Schedule) OnSaturdays() []calendar.Date {
	return append([]calendar.Date(nil), s.on...)
}

// OffSaturdays returns the Saturdays of the month that are not worked
func (s *Schedule) OffSaturdays() []calendar.Date {
	return append([]calendar.Date(nil), s.off...)
}

// Resolve computes the schedule of year/month for the rotation seeded by anchor.
// The anchor's weekday is not checked here, see ValidateAnchor.
func Resolve(year, month int, anchor calendar.Date) (*Schedule, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	m := time.Month(month)
	grid := calendar.MonthGrid(year, m)

	first, ok := firstSaturday(grid)
	if !ok {
		return nil, fmt.Errorf("%w: %d-%02d", ErrInvalidCadence, year, month)
	}

	on := Cadence(year, m, anchor)
	if len(on) == 0 || first.Before(on[0]) {
		on = append([]calendar.Date{first}, on...)
	}

	isOn := make(map[calendar.Date]bool, len(on))
	for _, day := range on {
		isOn[day] = true
	}

	var saturdays, off []calendar.Date
	for sat := first; grid.Contains(sat); sat = sat.AddDays(calendar.DaysPerWeek) {
		saturdays = append(saturdays, sat)
		if !isOn[sat] {
			off = append(off, sat)
		}
	}

	rows := governingSaturdays(grid, saturdays, isOn)

	offSaturdays := make(map[calendar.Date]bool)
	for _, row := range rows {
		if !row.on {
			offSaturdays[row.saturday] = true
		}
	}

	workdays := make(map[calendar.Date]bool, dateutil.DaysIn(year, m))
	for i, row := range grid.Rows {
		for _, day := range row.DaysIn(year, m) {
			workdays[day] = assign(day, rows[i].on, offSaturdays)
		}
	}

	return &Schedule{
		Year:     year,
		Month:    m,
		Anchor:   anchor,
		Grid:     grid,
		on:       on,
		off:      off,
		workdays: workdays,
	}, nil
}

// Cadence returns the dates anchor+14k (k >= 1) that fall in the month.
// Anchors far before the month are walked forward in whole periods.
func Cadence(year int, month time.Month, anchor calendar.Date) []calendar.Date {
	next := anchor.AddDays(CadenceDays)
	if gap := next.DaysUntil(calendar.NewDate(year, month, 1)); gap > 0 {
		periods := (gap + CadenceDays - 1) / CadenceDays
		next = next.AddDays(periods * CadenceDays)
	}

	var dates []calendar.Date
	for ; next.In(year, month); next = next.AddDays(CadenceDays) {
		dates = append(dates, next)
	}
	return dates
}

type rowStatus struct {
	saturday calendar.Date
	on       bool
}

// governingSaturdays returns, per grid row, the Saturday that decides the row.
// A row whose Saturday falls in an adjacent month takes the opposite of the
// nearest Saturday of the month, one week away.
func governingSaturdays(grid calendar.Grid, saturdays []calendar.Date, isOn map[calendar.Date]bool) []rowStatus {
	rows := make([]rowStatus, len(grid.Rows))
	for i, row := range grid.Rows {
		sat := row.Saturday()
		if grid.Contains(sat) {
			rows[i] = rowStatus{saturday: sat, on: isOn[sat]}
			continue
		}

		nearest := saturdays[0]
		if sat.After(nearest) {
			nearest = saturdays[len(saturdays)-1]
		}
		rows[i] = rowStatus{saturday: sat, on: !isOn[nearest]}
	}
	return rows
}

// assign decides one day. The Monday after an off Saturday is always off.
func assign(day calendar.Date, rowOn bool, offSaturdays map[calendar.Date]bool) bool {
	if day.Weekday() == time.Monday && offSaturdays[day.AddDays(-2)] {
		return false
	}

	col := dateutil.WeekdayIndex(day.Weekday())
	if rowOn {
		return col >= calendar.ColTuesday && col <= calendar.ColSaturday
	}
	return col < calendar.ColSaturday
}

func firstSaturday(grid calendar.Grid) (calendar.Date, bool) {
	for _, row := range grid.Rows {
		for _, day := range row {
			if grid.Contains(day) && day.Weekday() == time.Saturday {
				return day, true
			}
		}
	}
	return calendar.Date{}, false
}
