package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

// Weekday is an ordinal day of week, Monday = 0 ... Sunday = 6
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek number of entries in WeeklyAvailability
const DaysInWeek = 7

var weekdayNames = [DaysInWeek]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// WeekdayOf derives the weekday from a calendar date. It only depends on the
// year/month/day of t, never on locale.
func WeekdayOf(date time.Time) Weekday {
	// time.Weekday: Sunday = 0 ... Saturday = 6
	return Weekday((int(date.Weekday()) + 6) % DaysInWeek)
}

// IsValid returns true for Monday..Sunday
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if !w.IsValid() {
		return fmt.Sprintf("weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// ParseWeekday parses a lowercase english weekday name
func ParseWeekday(name string) (Weekday, error) {
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, name)
}

// DaySchedule is the working status and window of a single weekday
type DaySchedule struct {
	IsWorking bool
	Window    *types.TimeInterval
}

// WorkingDay builds a working DaySchedule; the window must be valid
func WorkingDay(window types.TimeInterval) (DaySchedule, error) {
	d := DaySchedule{IsWorking: true, Window: &window}
	if err := d.Validate(); err != nil {
		return DaySchedule{}, err
	}
	return d, nil
}

// DayOff builds a non-working DaySchedule
func DayOff() DaySchedule {
	return DaySchedule{}
}

// Validate enforces: a working day has a window with start < end
func (d DaySchedule) Validate() error {
	if !d.IsWorking {
		return nil
	}
	if d.Window == nil {
		return ErrInvalidWindow
	}
	if err := d.Window.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWindow, err)
	}
	return nil
}

// WeeklyAvailability is indexed by Weekday
type WeeklyAvailability [DaysInWeek]DaySchedule

// Day returns the schedule of the weekday; an invalid weekday is a day off
func (a WeeklyAvailability) Day(w Weekday) DaySchedule {
	if !w.IsValid() {
		return DayOff()
	}
	return a[w]
}

// IsOpenFor returns true if the weekday is a working day and the window
// fully contains the interval
func (a WeeklyAvailability) IsOpenFor(w Weekday, interval types.TimeInterval) bool {
	return a.CheckOpenFor(w, interval) == nil
}

// CheckOpenFor is IsOpenFor with the reason: ErrDayOff when the day is not
// working, ErrOutsideWorkingHours when the interval is not contained.
func (a WeeklyAvailability) CheckOpenFor(w Weekday, interval types.TimeInterval) error {
	day := a.Day(w)
	if !day.IsWorking || day.Window == nil {
		return ErrDayOff
	}
	if !day.Window.Contains(interval) {
		return ErrOutsideWorkingHours
	}
	return nil
}

// WorkingDays returns the number of working days
func (a WeeklyAvailability) WorkingDays() int {
	n := 0
	for _, d := range a {
		if d.IsWorking {
			n++
		}
	}
	return n
}

// Validate checks every day and that at least one day is working.
// Trainer profile updates must pass it.
func (a WeeklyAvailability) Validate() error {
	for i, d := range a {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%s: %w", Weekday(i), err)
		}
	}
	if a.WorkingDays() == 0 {
		return ErrNoWorkingDays
	}
	return nil
}
