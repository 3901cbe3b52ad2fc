package domain

import (
	"time"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

// ConflictPolicy is the set of statuses that still occupy the calendar
type ConflictPolicy struct {
	LiveStatuses []SessionStatus
}

// NewConflictPolicy copies the given statuses into a policy
func NewConflictPolicy(statuses ...SessionStatus) ConflictPolicy {
	live := make([]SessionStatus, len(statuses))
	copy(live, statuses)
	return ConflictPolicy{LiveStatuses: live}
}

// IsLive returns true if a session in this status blocks the calendar
func (p ConflictPolicy) IsLive(status SessionStatus) bool {
	for _, s := range p.LiveStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ConflictCandidate is the slot being checked
type ConflictCandidate struct {
	Date             time.Time
	Interval         types.TimeInterval
	ExcludeSessionID int64 // 0 = nothing to exclude
}

// HasConflict reports whether the candidate overlaps any existing session of
// the same date that is live under the policy. existing is expected to
// belong to a single trainer or member; the caller chooses which.
func HasConflict(existing []*Session, candidate ConflictCandidate, policy ConflictPolicy) bool {
	return FindConflict(existing, candidate, policy) != nil
}

// FindConflict is HasConflict returning the first conflicting session
func FindConflict(existing []*Session, candidate ConflictCandidate, policy ConflictPolicy) *Session {
	for _, s := range existing {
		if s == nil {
			continue
		}
		if candidate.ExcludeSessionID != 0 && s.ID == candidate.ExcludeSessionID {
			continue
		}
		if !SameDate(s.Date, candidate.Date) {
			continue
		}
		if !policy.IsLive(s.Status) {
			continue
		}
		if s.Interval.Overlaps(candidate.Interval) {
			return s
		}
	}
	return nil
}
