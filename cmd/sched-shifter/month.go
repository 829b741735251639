package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cannarn/Sched-Shifter/internal/calendar"
	"github.com/cannarn/Sched-Shifter/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func monthCmd() *cobra.Command {
	var (
		year   int
		month  int
		anchor string
		format string
	)

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print the work schedule for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = int(now.Month())
			}
			if format == "" {
				format = cfg.Schedule.OutputFormat
			}

			anchorDate, err := calendar.ParseDate(anchor)
			if err != nil {
				return fmt.Errorf("invalid anchor: %w", err)
			}

			info, err := newService().ComputeSchedule(year, month, anchorDate)
			if err != nil {
				return err
			}

			logger.Info("Schedule ready",
				zap.Int("year", year),
				zap.Int("month", month),
				zap.String("format", format))

			return writeMonth(cmd.OutOrStdout(), info, format)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current)")
	cmd.Flags().StringVar(&anchor, "anchor", "", "Most recent Saturday worked, e.g. 2024-02-24")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, csv or json (default from config)")
	_ = cmd.MarkFlagRequired("anchor")

	return cmd
}

func dayCmd() *cobra.Command {
	var date, anchor string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the shift for a single date",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := calendar.ParseDate(date)
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}
			anchorDate, err := calendar.ParseDate(anchor)
			if err != nil {
				return fmt.Errorf("invalid anchor: %w", err)
			}

			info, err := newService().DayInfo(day, anchorDate)
			if err != nil {
				return err
			}

			status := "OFF"
			if info.IsWorkday {
				status = fmt.Sprintf("WORK %s (%gh)", info.Shift, info.WorkingHours)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", info.Date, info.Weekday, status)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to look up")
	cmd.Flags().StringVar(&anchor, "anchor", "", "Most recent Saturday worked")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("anchor")

	return cmd
}

func writeMonth(w io.Writer, info *calendar.MonthInfo, format string) error {
	switch format {
	case "text":
		return render.Text(w, info)
	case "csv":
		return render.CSV(w, info)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
