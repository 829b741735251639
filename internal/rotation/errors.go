package rotation

import (
	"errors"
	"fmt"
	"time"

	"github.com/cannarn/Sched-Shifter/internal/calendar"
)

var (
	// ErrInvalidMonth is returned for a month outside 1..12
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidCadence is returned when no Saturday of the target month
	// can be located. A real Gregorian month always has one.
	ErrInvalidCadence = errors.New("no saturday found in target month")

	// ErrAmbiguousAnchor marks an anchor that is not a Saturday. Resolve
	// accepts such anchors and shifts the whole rotation with them.
	ErrAmbiguousAnchor = errors.New("anchor is not a saturday")
)

// ValidateAnchor returns ErrAmbiguousAnchor unless the anchor is a Saturday
func ValidateAnchor(anchor calendar.Date) error {
	if wd := anchor.Weekday(); wd != time.Saturday {
		return fmt.Errorf("%w: %s is a %s", ErrAmbiguousAnchor, anchor, wd)
	}
	return nil
}
