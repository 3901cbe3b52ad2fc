package types

import (
	"errors"
	"fmt"
)

// ErrInvalidInterval возвращается, когда конец интервала не позже начала
var ErrInvalidInterval = errors.New("types: end time must be after start time")

// TimeInterval полуоткрытый интервал времени суток [Start, End)
type TimeInterval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewTimeInterval создает интервал, только если start < end
func NewTimeInterval(start, end TimeOfDay) (TimeInterval, error) {
	interval := TimeInterval{Start: start, End: end}
	if err := interval.Validate(); err != nil {
		return TimeInterval{}, err
	}
	return interval, nil
}

// ParseTimeInterval парсит пару строк "HH:MM" в интервал
func ParseTimeInterval(start, end string) (TimeInterval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeInterval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeInterval{}, err
	}
	return NewTimeInterval(s, e)
}

// Validate проверяет инвариант Start < End
func (i TimeInterval) Validate() error {
	if !i.Start.IsValid() || !i.End.IsValid() {
		return fmt.Errorf("%w: %d-%d", ErrTimeOutOfRange, i.Start, i.End)
	}
	if i.Start >= i.End {
		return fmt.Errorf("%w: %s-%s", ErrInvalidInterval, i.Start, i.End)
	}
	return nil
}

// Contains returns true if inner lies fully inside i.
func (i TimeInterval) Contains(inner TimeInterval) bool {
	return i.Start <= inner.Start && inner.End <= i.End
}

// Overlaps is the half-open intersection test. Intervals that only touch
// (10:00-11:00 and 11:00-12:00) do not overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start < other.End && other.Start < i.End
}

// DurationMinutes возвращает длительность интервала в минутах
func (i TimeInterval) DurationMinutes() int {
	return int(i.End - i.Start)
}

// String возвращает интервал в виде "HH:MM-HH:MM"
func (i TimeInterval) String() string {
	return i.Start.String() + "-" + i.End.String()
}
