package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasConflict(t *testing.T) {
	tuesday := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	wednesday := tuesday.AddDate(0, 0, 1)

	existing := []*Session{
		{ID: 1, Date: tuesday, Interval: interval(t, "10:00", "11:00"), Status: StatusScheduled},
		{ID: 2, Date: tuesday, Interval: interval(t, "14:00", "15:00"), Status: StatusCompleted},
		{ID: 3, Date: tuesday, Interval: interval(t, "16:00", "17:00"), Status: StatusCancelled},
		{ID: 4, Date: wednesday, Interval: interval(t, "12:00", "13:00"), Status: StatusScheduled},
		nil,
	}

	trainerPolicy := NewConflictPolicy(DefaultTrainerLiveStatuses...)
	memberPolicy := NewConflictPolicy(DefaultMemberLiveStatuses...)

	tests := []struct {
		name      string
		candidate ConflictCandidate
		policy    ConflictPolicy
		want      bool
	}{
		{
			name:      "overlaps scheduled",
			candidate: ConflictCandidate{Date: tuesday, Interval: interval(t, "10:30", "11:30")},
			policy:    trainerPolicy,
			want:      true,
		},
		{
			name:      "touches scheduled",
			candidate: ConflictCandidate{Date: tuesday, Interval: interval(t, "11:00", "12:00")},
			policy:    trainerPolicy,
			want:      false,
		},
		{
			name:      "overlaps completed under trainer policy",
			candidate: ConflictCandidate{Date: tuesday, Interval: interval(t, "14:30", "15:30")},
			policy:    trainerPolicy,
			want:      true,
		},
		{
			name:      "completed does not block member policy",
			candidate: ConflictCandidate{Date: tuesday, Interval: interval(t, "14:30", "15:30")},
			policy:    memberPolicy,
			want:      false,
		},
		{
			name:      "cancelled never blocks",
			candidate: ConflictCandidate{Date: tuesday, Interval: interval(t, "16:00", "17:00")},
			policy:    trainerPolicy,
			want:      false,
		},
		{
			name:      "other date",
			candidate: ConflictCandidate{Date: wednesday, Interval: interval(t, "10:30", "11:30")},
			policy:    trainerPolicy,
			want:      false,
		},
		{
			name:      "excluded self",
			candidate: ConflictCandidate{Date: tuesday, Interval: interval(t, "10:15", "11:15"), ExcludeSessionID: 1},
			policy:    trainerPolicy,
			want:      false,
		},
		{
			name:      "same date in other location",
			candidate: ConflictCandidate{Date: time.Date(2026, 10, 20, 18, 0, 0, 0, time.FixedZone("MSK", 3*60*60)), Interval: interval(t, "10:30", "10:45")},
			policy:    memberPolicy,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConflict(existing, tt.candidate, tt.policy))
		})
	}
}

func TestFindConflict_ReturnsBlockingSession(t *testing.T) {
	day := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	existing := []*Session{
		{ID: 7, Date: day, Interval: interval(t, "08:00", "09:00"), Status: StatusScheduled},
		{ID: 8, Date: day, Interval: interval(t, "09:00", "10:00"), Status: StatusScheduled},
	}

	got := FindConflict(existing, ConflictCandidate{Date: day, Interval: interval(t, "09:30", "10:30")},
		NewConflictPolicy(StatusScheduled))

	if assert.NotNil(t, got) {
		assert.Equal(t, int64(8), got.ID)
	}
}

func TestNewConflictPolicy_Copies(t *testing.T) {
	statuses := []SessionStatus{StatusScheduled}
	p := NewConflictPolicy(statuses...)
	statuses[0] = StatusCancelled

	assert.True(t, p.IsLive(StatusScheduled))
	assert.False(t, p.IsLive(StatusCancelled))
}
