package domain

import "errors"

// Error kinds. Every reason below wraps exactly one kind, so callers can
// match either the precise reason or the whole class:
//
//	errors.Is(err, ErrTrainerDoubleBooked) // precise
//	errors.Is(err, ErrConflict)            // class
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
	ErrConflict     = errors.New("conflict")
	ErrCancellation = errors.New("cancellation rejected")
)

// NotFound
var (
	ErrTrainerNotFound = newReason(ErrNotFound, "trainer_not_found", "trainer not found")
	ErrMemberNotFound  = newReason(ErrNotFound, "member_not_found", "member not found")
	ErrSessionNotFound = newReason(ErrNotFound, "session_not_found", "session not found")
)

// InvalidState
var (
	ErrTrainerInactive            = newReason(ErrInvalidState, "trainer_inactive", "trainer is not active")
	ErrTrainerNotAcceptingClients = newReason(ErrInvalidState, "trainer_not_accepting_clients", "trainer is not accepting new clients")
	ErrMemberNotActive            = newReason(ErrInvalidState, "member_not_active", "member is not active")
	ErrNotAssigned                = newReason(ErrInvalidState, "not_assigned", "trainer is not assigned to member")
	ErrSessionNotScheduled        = newReason(ErrInvalidState, "session_not_scheduled", "session is not in scheduled state")
)

// Unavailable
var (
	ErrPastDate            = newReason(ErrUnavailable, "past_date", "session date is in the past")
	ErrDayOff              = newReason(ErrUnavailable, "day_off", "trainer does not work on this day")
	ErrOutsideWorkingHours = newReason(ErrUnavailable, "outside_working_hours", "session is outside trainer working hours")
)

// Conflict
var (
	ErrTrainerDoubleBooked = newReason(ErrConflict, "trainer_double_booked", "trainer already has a session at this time")
	ErrMemberDoubleBooked  = newReason(ErrConflict, "member_double_booked", "member already has a session at this time")
)

// Cancellation
var (
	ErrCancellationTooLate     = newReason(ErrCancellation, "cancellation_too_late", "too late to cancel the session")
	ErrCancellationAlreadyPast = newReason(ErrCancellation, "cancellation_already_past", "session has already started")
)

// InvalidInput
var (
	ErrNoWorkingDays = newReason(ErrInvalidInput, "no_working_days", "availability must have at least one working day")
	ErrInvalidWindow = newReason(ErrInvalidInput, "invalid_window", "working day must have a window with start before end")
)

type reasonError struct {
	kind error
	code string
	msg  string
}

func newReason(kind error, code, msg string) error {
	return &reasonError{kind: kind, code: code, msg: msg}
}

func (e *reasonError) Error() string {
	return e.msg
}

func (e *reasonError) Unwrap() error {
	return e.kind
}

var kinds = []struct {
	err  error
	code string
}{
	{ErrInvalidInput, "invalid_input"},
	{ErrNotFound, "not_found"},
	{ErrInvalidState, "invalid_state"},
	{ErrUnavailable, "unavailable"},
	{ErrConflict, "conflict"},
	{ErrCancellation, "cancellation"},
}

// Kind returns the error kind err belongs to, or nil for unclassified errors.
func Kind(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.err
		}
	}
	return nil
}

// Code returns a stable snake_case identifier of the most precise reason
// found in err: the reason code, else the kind code, else "internal".
func Code(err error) string {
	var reason *reasonError
	if errors.As(err, &reason) {
		return reason.code
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.code
		}
	}
	return "internal"
}
