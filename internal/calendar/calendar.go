package calendar

import (
	"fmt"
	"time"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeOff
	DayTypePadding // shown in the grid, belongs to an adjacent month
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeOff:
		return "off"
	case DayTypePadding:
		return "padding"
	default:
		return fmt.Sprintf("DayType(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler
func (t DayType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date         Date    `json:"date"`
	Weekday      string  `json:"weekday"`
	Type         DayType `json:"type"`
	InMonth      bool    `json:"in_month"`
	IsWorkday    bool    `json:"is_workday"`
	Shift        string  `json:"shift,omitempty"`
	WorkingHours float64 `json:"working_hours"`
}

// MonthInfo represents the rotation schedule for a month
type MonthInfo struct {
	Year         int         `json:"year"`
	Month        time.Month  `json:"month"`
	Anchor       Date        `json:"anchor"`
	WorkDays     int         `json:"work_days"`
	OffDays      int         `json:"off_days"`
	WorkingHours float64     `json:"working_hours"` // Total shift hours in the month
	OnSaturdays  []Date      `json:"on_saturdays"`
	OffSaturdays []Date      `json:"off_saturdays"`
	Weeks        [][]DayInfo `json:"weeks"` // grid rows including padding days
	Days         []DayInfo   `json:"days"`  // days of the month only
}

// Day returns the info for a day of the month
func (m *MonthInfo) Day(date Date) (*DayInfo, bool) {
	for i := range m.Days {
		if m.Days[i].Date == date {
			return &m.Days[i], true
		}
	}
	return nil, false
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day and returns its shift hours
	IsWorkday(date Date) (bool, float64, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month time.Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date Date) (*DayInfo, error)
}
