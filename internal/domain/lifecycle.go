package domain

import "time"

// Lifecycle is the state machine of a persisted session.
//
//	scheduled -> completed            (admin)
//	scheduled -> cancelled            (admin, optional reason)
//	scheduled -> cancelled_by_member  (member, cutoff rule)
//
// completed, cancelled and cancelled_by_member are terminal.
type Lifecycle struct {
	// MemberCancellationCutoff minimum time between now and the session start
	// for a member cancellation; exactly the cutoff is still allowed.
	MemberCancellationCutoff time.Duration
	// Location the session date and start time are interpreted in.
	Location *time.Location
}

// NewLifecycle creates a lifecycle; nil location means UTC
func NewLifecycle(cutoff time.Duration, loc *time.Location) Lifecycle {
	if loc == nil {
		loc = time.UTC
	}
	return Lifecycle{MemberCancellationCutoff: cutoff, Location: loc}
}

// DefaultLifecycle uses the default 120 minute cutoff in UTC
func DefaultLifecycle() Lifecycle {
	return NewLifecycle(DefaultMemberCancellationCutoffMinutes*time.Minute, time.UTC)
}

// Complete moves a scheduled session to completed
func (l Lifecycle) Complete(s *Session, now time.Time) error {
	if !s.IsScheduled() {
		return ErrSessionNotScheduled
	}
	s.Status = StatusCompleted
	s.UpdatedAt = now
	return nil
}

// CancelByAdmin moves a scheduled session to cancelled
func (l Lifecycle) CancelByAdmin(s *Session, now time.Time, reason *string) error {
	if !s.IsScheduled() {
		return ErrSessionNotScheduled
	}
	l.cancel(s, StatusCancelled, now, reason)
	return nil
}

// CancelByMember moves a scheduled session to cancelled_by_member if the
// session has not started and at least the cutoff remains before it starts
func (l Lifecycle) CancelByMember(s *Session, now time.Time, reason *string) error {
	if err := l.CheckMemberCancellation(s, now); err != nil {
		return err
	}
	l.cancel(s, StatusCancelledByMember, now, reason)
	return nil
}

// CheckMemberCancellation runs the member cancellation guards without
// changing the session
func (l Lifecycle) CheckMemberCancellation(s *Session, now time.Time) error {
	if !s.IsScheduled() {
		return ErrSessionNotScheduled
	}

	startsAt := s.StartsAt(l.location())
	if now.After(startsAt) {
		return ErrCancellationAlreadyPast
	}
	if startsAt.Sub(now) < l.MemberCancellationCutoff {
		return ErrCancellationTooLate
	}
	return nil
}

func (l Lifecycle) cancel(s *Session, status SessionStatus, now time.Time, reason *string) {
	s.Status = status
	s.CancellationReason = reason
	cancelledAt := now
	s.CancelledAt = &cancelledAt
	s.UpdatedAt = now
}

func (l Lifecycle) location() *time.Location {
	if l.Location == nil {
		return time.UTC
	}
	return l.Location
}
