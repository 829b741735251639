package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/cannarn/Sched-Shifter/internal/calendar"
	"github.com/cannarn/Sched-Shifter/internal/rotation"
	"github.com/cannarn/Sched-Shifter/internal/shift"
	"go.uber.org/zap"
)

var anchorFeb24 = calendar.NewDate(2024, time.February, 24)

func TestComputeSchedule_March2024(t *testing.T) {
	svc := NewService(zap.NewNop())

	info, err := svc.ComputeSchedule(2024, 3, anchorFeb24)
	if err != nil {
		t.Fatalf("ComputeSchedule() error = %v", err)
	}

	if info.WorkDays != 22 || info.OffDays != 9 {
		t.Errorf("work/off = %d/%d, want 22/9", info.WorkDays, info.OffDays)
	}
	// 3 worked Saturdays at 7.5h, 19 other work days at 8h
	if info.WorkingHours != 174.5 {
		t.Errorf("WorkingHours = %v, want 174.5", info.WorkingHours)
	}
	if len(info.Days) != 31 {
		t.Errorf("len(Days) = %d, want 31", len(info.Days))
	}
	if len(info.Weeks) != 5 {
		t.Fatalf("len(Weeks) = %d, want 5", len(info.Weeks))
	}
	for i, week := range info.Weeks {
		if len(week) != calendar.DaysPerWeek {
			t.Errorf("week %d has %d days", i, len(week))
		}
	}

	padding := info.Weeks[0][0]
	if padding.InMonth || padding.Type != calendar.DayTypePadding || padding.Shift != "" {
		t.Errorf("2024-02-26 should be padding, got %+v", padding)
	}

	tests := []struct {
		day       int
		wantShift shift.Label
		wantType  calendar.DayType
	}{
		{1, shift.Day, calendar.DayTypeWorkday},
		{2, shift.Early, calendar.DayTypeWorkday},
		{4, shift.Off, calendar.DayTypeOff},
		{5, shift.Late, calendar.DayTypeWorkday},
		{16, shift.Off, calendar.DayTypeOff},
		{18, shift.Off, calendar.DayTypeOff},
		{19, shift.Late, calendar.DayTypeWorkday},
		{23, shift.Early, calendar.DayTypeWorkday},
		{31, shift.Off, calendar.DayTypeOff},
	}

	for _, tt := range tests {
		date := calendar.NewDate(2024, time.March, tt.day)
		day, ok := info.Day(date)
		if !ok {
			t.Errorf("%v missing", date)
			continue
		}
		if day.Shift != tt.wantShift.String() {
			t.Errorf("%v shift = %q, want %q", date, day.Shift, tt.wantShift)
		}
		if day.Type != tt.wantType {
			t.Errorf("%v type = %v, want %v", date, day.Type, tt.wantType)
		}
		if day.IsWorkday != (tt.wantType == calendar.DayTypeWorkday) {
			t.Errorf("%v IsWorkday = %v", date, day.IsWorkday)
		}
	}
}

func TestComputeSchedule_Validation(t *testing.T) {
	friday := calendar.NewDate(2024, time.February, 23)

	tests := []struct {
		name    string
		svc     *Service
		year    int
		month   int
		anchor  calendar.Date
		wantErr error
	}{
		{"month zero", NewService(zap.NewNop()), 2024, 0, anchorFeb24, rotation.ErrInvalidMonth},
		{"month thirteen", NewService(zap.NewNop()), 2024, 13, anchorFeb24, rotation.ErrInvalidMonth},
		{"year before range", NewService(zap.NewNop()), 2023, 3, anchorFeb24, ErrYearOutOfRange},
		{"year after range", NewService(zap.NewNop()), 2101, 3, anchorFeb24, ErrYearOutOfRange},
		{"custom year range", NewService(zap.NewNop(), WithYearRange(1900, 2200)), 1999, 3, calendar.NewDate(1999, time.February, 20), nil},
		{"strict rejects Friday anchor", NewService(zap.NewNop()), 2024, 3, friday, rotation.ErrAmbiguousAnchor},
		{"lenient accepts Friday anchor", NewService(zap.NewNop(), WithStrictAnchor(false)), 2024, 3, friday, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.ComputeSchedule(tt.year, tt.month, tt.anchor)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ComputeSchedule() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ComputeSchedule() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestComputeSchedule_LabelsMatchMapping(t *testing.T) {
	svc := NewService(zap.NewNop())

	for month := 1; month <= 12; month++ {
		info, err := svc.ComputeSchedule(2025, month, calendar.NewDate(2024, time.December, 28))
		if err != nil {
			t.Fatalf("ComputeSchedule(2025, %d) error = %v", month, err)
		}

		work := 0
		for _, day := range info.Days {
			if (day.Shift == shift.Off.String()) == day.IsWorkday {
				t.Errorf("%v: shift %q with IsWorkday=%v", day.Date, day.Shift, day.IsWorkday)
			}
			if day.IsWorkday {
				work++
			}
		}
		if work != info.WorkDays || work+info.OffDays != len(info.Days) {
			t.Errorf("2025-%02d totals %d/%d disagree with %d days", month, info.WorkDays, info.OffDays, len(info.Days))
		}
	}
}

func TestRotationCalendar(t *testing.T) {
	cal := NewRotationCalendar(NewService(zap.NewNop()), anchorFeb24)

	tests := []struct {
		name      string
		date      calendar.Date
		wantWork  bool
		wantHours float64
	}{
		{"Monday after off Saturday", calendar.NewDate(2024, time.March, 18), false, 0},
		{"Tuesday late shift", calendar.NewDate(2024, time.March, 19), true, 8},
		{"worked Saturday", calendar.NewDate(2024, time.March, 23), true, 7.5},
		{"following month", calendar.NewDate(2024, time.April, 30), true, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isWorkday, hours, err := cal.IsWorkday(tt.date)
			if err != nil {
				t.Fatalf("IsWorkday() error = %v", err)
			}
			if isWorkday != tt.wantWork || hours != tt.wantHours {
				t.Errorf("IsWorkday(%v) = (%v, %v), want (%v, %v)", tt.date, isWorkday, hours, tt.wantWork, tt.wantHours)
			}
		})
	}

	info, err := cal.GetMonthInfo(2024, time.April)
	if err != nil {
		t.Fatalf("GetMonthInfo() error = %v", err)
	}
	if info.Month != time.April || len(info.Days) != 30 {
		t.Errorf("GetMonthInfo() = %v with %d days", info.Month, len(info.Days))
	}

	if _, err := cal.GetDayInfo(calendar.NewDate(2023, time.May, 1)); !errors.Is(err, ErrYearOutOfRange) {
		t.Errorf("GetDayInfo(2023-05-01) error = %v, want ErrYearOutOfRange", err)
	}
}
