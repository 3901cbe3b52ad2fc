package domain

import (
	"time"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

// SessionStatus represents the status of a training session
type SessionStatus string

const (
	StatusScheduled         SessionStatus = "scheduled"
	StatusCompleted         SessionStatus = "completed"
	StatusCancelled         SessionStatus = "cancelled"
	StatusCancelledByMember SessionStatus = "cancelled_by_member"
)

// AllSessionStatuses список всех допустимых статусов
var AllSessionStatuses = []SessionStatus{
	StatusScheduled,
	StatusCompleted,
	StatusCancelled,
	StatusCancelledByMember,
}

// IsValid returns true for a known status
func (s SessionStatus) IsValid() bool {
	for _, known := range AllSessionStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no transition is allowed out of the status
func (s SessionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusCancelledByMember
}

// Session represents a personal training session between a trainer and a member
type Session struct {
	ID        int64
	TrainerID int64
	MemberID  int64
	Date      time.Time // calendar date, see DateOnly
	Interval  types.TimeInterval
	Status    SessionStatus
	Notes     *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true if the session still occupies the calendar and can change state
func (s *Session) IsScheduled() bool {
	return s.Status == StatusScheduled
}

// StartsAt returns the moment the session starts in the given location
func (s *Session) StartsAt(loc *time.Location) time.Time {
	y, m, d := s.Date.Date()
	return time.Date(y, m, d, s.Interval.Start.Hour(), s.Interval.Start.Minute(), 0, 0, loc)
}

// SessionFilter фильтр для выборки сессий
// Пустые поля не участвуют в фильтрации
type SessionFilter struct {
	TrainerID *int64
	MemberID  *int64
	Date      *time.Time
	StatusIn  []SessionStatus
}

// DateOnly drops the time-of-day and the location: two dates are equal iff
// their year, month and day are equal.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate compares calendar dates ignoring time and location
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
