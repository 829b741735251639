package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/cannarn/Sched-Shifter/internal/calendar"
	"github.com/cannarn/Sched-Shifter/internal/rotation"
	"github.com/cannarn/Sched-Shifter/internal/shift"
	"go.uber.org/zap"
)

// ErrYearOutOfRange is returned for a year outside the configured bounds
var ErrYearOutOfRange = errors.New("year out of range")

// Default year bounds
const (
	DefaultMinYear = 2024
	DefaultMaxYear = 2100
)

// Service computes labelled month schedules
type Service struct {
	logger       *zap.Logger
	strictAnchor bool
	minYear      int
	maxYear      int
}

// Option configures a Service
type Option func(*Service)

// WithStrictAnchor rejects anchors that are not Saturdays (default true)
func WithStrictAnchor(strict bool) Option {
	return func(s *Service) {
		s.strictAnchor = strict
	}
}

// WithYearRange limits the accepted years
func WithYearRange(minYear, maxYear int) Option {
	return func(s *Service) {
		s.minYear = minYear
		s.maxYear = maxYear
	}
}

// NewService creates a new schedule service
func NewService(logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		logger:       logger,
		strictAnchor: true,
		minYear:      DefaultMinYear,
		maxYear:      DefaultMaxYear,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ComputeSchedule resolves the month's rotation and labels every day of its grid
func (s *Service) ComputeSchedule(year, month int, anchor calendar.Date) (*calendar.MonthInfo, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: got %d", rotation.ErrInvalidMonth, month)
	}
	if year < s.minYear || year > s.maxYear {
		return nil, fmt.Errorf("%w: %d not in %d..%d", ErrYearOutOfRange, year, s.minYear, s.maxYear)
	}
	if err := rotation.ValidateAnchor(anchor); err != nil {
		if s.strictAnchor {
			return nil, err
		}
		s.logger.Warn("Anchor is not a Saturday, rotation will be shifted",
			zap.Stringer("anchor", anchor),
			zap.Stringer("weekday", anchor.Weekday()))
	}

	sched, err := rotation.Resolve(year, month, anchor)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rotation: %w", err)
	}

	info := buildMonthInfo(sched)

	s.logger.Debug("Schedule computed",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Stringer("anchor", anchor),
		zap.Int("work_days", info.WorkDays),
		zap.Int("off_days", info.OffDays),
		zap.Float64("working_hours", info.WorkingHours))

	return info, nil
}

// DayInfo returns one day of the rotation seeded by anchor
func (s *Service) DayInfo(date, anchor calendar.Date) (*calendar.DayInfo, error) {
	info, err := s.ComputeSchedule(date.Year, int(date.Month), anchor)
	if err != nil {
		return nil, err
	}

	day, ok := info.Day(date)
	if !ok {
		return nil, fmt.Errorf("day not found in schedule: %s", date)
	}
	return day, nil
}

func buildMonthInfo(sched *rotation.Schedule) *calendar.MonthInfo {
	info := &calendar.MonthInfo{
		Year:         sched.Year,
		Month:        sched.Month,
		Anchor:       sched.Anchor,
		OnSaturdays:  sched.OnSaturdays(),
		OffSaturdays: sched.OffSaturdays(),
		Weeks:        make([][]calendar.DayInfo, 0, len(sched.Grid.Rows)),
	}

	for _, row := range sched.Grid.Rows {
		week := make([]calendar.DayInfo, 0, calendar.DaysPerWeek)
		for _, day := range row {
			dayInfo := describe(sched, day)
			week = append(week, dayInfo)

			if !dayInfo.InMonth {
				continue
			}
			info.Days = append(info.Days, dayInfo)
			if dayInfo.IsWorkday {
				info.WorkDays++
				info.WorkingHours += dayInfo.WorkingHours
			} else {
				info.OffDays++
			}
		}
		info.Weeks = append(info.Weeks, week)
	}

	return info
}

func describe(sched *rotation.Schedule, day calendar.Date) calendar.DayInfo {
	dayInfo := calendar.DayInfo{
		Date:    day,
		Weekday: day.Weekday().String(),
		Type:    calendar.DayTypePadding,
	}

	isWorkday, inMonth := sched.IsWorkday(day)
	if !inMonth {
		return dayInfo
	}

	label := shift.For(day, isWorkday)
	dayInfo.InMonth = true
	dayInfo.IsWorkday = isWorkday
	dayInfo.Shift = label.String()
	dayInfo.WorkingHours = label.Hours()
	dayInfo.Type = calendar.DayTypeOff
	if isWorkday {
		dayInfo.Type = calendar.DayTypeWorkday
	}
	return dayInfo
}

// RotationCalendar answers calendar lookups for a fixed anchor
type RotationCalendar struct {
	service *Service
	anchor  calendar.Date
}

var _ calendar.Calendar = (*RotationCalendar)(nil)

// NewRotationCalendar binds the service to an anchor
func NewRotationCalendar(service *Service, anchor calendar.Date) *RotationCalendar {
	return &RotationCalendar{service: service, anchor: anchor}
}

// IsWorkday checks if the given date is a working day
func (rc *RotationCalendar) IsWorkday(date calendar.Date) (bool, float64, error) {
	day, err := rc.GetDayInfo(date)
	if err != nil {
		return false, 0, err
	}
	return day.IsWorkday, day.WorkingHours, nil
}

// GetMonthInfo returns calendar info for the entire month
func (rc *RotationCalendar) GetMonthInfo(year int, month time.Month) (*calendar.MonthInfo, error) {
	return rc.service.ComputeSchedule(year, int(month), rc.anchor)
}

// GetDayInfo returns detailed info for a specific day
func (rc *RotationCalendar) GetDayInfo(date calendar.Date) (*calendar.DayInfo, error) {
	return rc.service.DayInfo(date, rc.anchor)
}
