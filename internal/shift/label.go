package shift

import (
	"time"

	"github.com/cannarn/Sched-Shifter/internal/calendar"
)

// Label is the shift shown for a day
type Label string

const (
	Off   Label = "OFF"
	Day   Label = "7:30–3:30"
	Late  Label = "11:30–7:30"
	Early Label = "6:00–1:30"
)

// Window is a shift's start and end as offsets from midnight
type Window struct {
	Start time.Duration
	End   time.Duration
}

// Hours returns the length of the shift
func (w Window) Hours() float64 {
	return (w.End - w.Start).Hours()
}

// byWeekday overrides the Day shift on specific weekdays
var byWeekday = map[time.Weekday]Label{
	time.Tuesday:  Late,
	time.Saturday: Early,
}

var windows = map[Label]Window{
	Day:   {Start: clock(7, 30), End: clock(15, 30)},
	Late:  {Start: clock(11, 30), End: clock(19, 30)},
	Early: {Start: clock(6, 0), End: clock(13, 30)},
}

// For returns the shift label of a day
func For(day calendar.Date, isWorkday bool) Label {
	if !isWorkday {
		return Off
	}
	if label, ok := byWeekday[day.Weekday()]; ok {
		return label
	}
	return Day
}

// Window returns the working window; ok is false for Off and unknown labels
func (l Label) Window() (Window, bool) {
	w, ok := windows[l]
	return w, ok
}

// Hours returns the shift length, zero for Off
func (l Label) Hours() float64 {
	w, ok := l.Window()
	if !ok {
		return 0
	}
	return w.Hours()
}

// IsOff reports whether the label marks a day off
func (l Label) IsOff() bool {
	return l == Off
}

// IsValid checks if the Label is one of the defined shifts
func (l Label) IsValid() bool {
	switch l {
	case Off, Day, Late, Early:
		return true
	}
	return false
}

func (l Label) String() string {
	return string(l)
}

func clock(hour, minute int) time.Duration {
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute
}
