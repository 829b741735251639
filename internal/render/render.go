package render

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cannarn/Sched-Shifter/internal/calendar"
)

const cellWidth = 12

var weekdayHeaders = [calendar.DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Text writes the month as a Monday-first grid with a shift label per day
func Text(w io.Writer, info *calendar.MonthInfo) error {
	bw := bufio.NewWriter(w)

	title := fmt.Sprintf("Work Schedule – %s %d", info.Month, info.Year)
	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, strings.Repeat("═", cellWidth*calendar.DaysPerWeek))
	for _, header := range weekdayHeaders {
		fmt.Fprintf(bw, "%-*s", cellWidth, header)
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, strings.Repeat("─", cellWidth*calendar.DaysPerWeek))

	for _, week := range info.Weeks {
		var numbers, shifts strings.Builder
		for _, day := range week {
			if !day.InMonth {
				fmt.Fprintf(&numbers, "%-*s", cellWidth, "")
				fmt.Fprintf(&shifts, "%-*s", cellWidth, "")
				continue
			}
			marker := " "
			if day.IsWorkday {
				marker = "*"
			}
			fmt.Fprintf(&numbers, "%-*s", cellWidth, fmt.Sprintf("%2d%s", day.Date.Day, marker))
			fmt.Fprintf(&shifts, "%-*s", cellWidth, day.Shift)
		}
		fmt.Fprintln(bw, strings.TrimRight(numbers.String(), " "))
		fmt.Fprintln(bw, strings.TrimRight(shifts.String(), " "))
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "Legend: * = work day (shift shown), OFF = day off")
	fmt.Fprintf(bw, "Anchor:        %s\n", info.Anchor)
	fmt.Fprintf(bw, "On Saturdays:  %s\n", joinDates(info.OnSaturdays))
	fmt.Fprintf(bw, "Off Saturdays: %s\n", joinDates(info.OffSaturdays))
	fmt.Fprintf(bw, "Work days: %d  Off days: %d  Hours: %s\n",
		info.WorkDays, info.OffDays, formatHours(info.WorkingHours))

	return bw.Flush()
}

// CSV writes one record per day of the month
func CSV(w io.Writer, info *calendar.MonthInfo) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "weekday", "status", "shift", "hours"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, day := range info.Days {
		record := []string{
			day.Date.String(),
			day.Weekday,
			day.Type.String(),
			day.Shift,
			formatHours(day.WorkingHours),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record for %s: %w", day.Date, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func joinDates(dates []calendar.Date) string {
	if len(dates) == 0 {
		return "-"
	}
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = d.String()
	}
	return strings.Join(parts, ", ")
}

func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
