package domain

import "time"

// MemberStatus represents the membership status
type MemberStatus string

const (
	MemberStatusActive  MemberStatus = "active"
	MemberStatusPending MemberStatus = "pending"
	MemberStatusExpired MemberStatus = "expired"
)

// Member is read-only for the booking engine
type Member struct {
	ID                 int64
	FullName           string
	Status             MemberStatus
	AssignedTrainerIDs []int64
	PrimaryTrainerID   *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the membership allows booking
func (m *Member) IsActive() bool {
	return m.Status == MemberStatusActive
}

// IsAssignedTo returns true if the trainer is the primary trainer of the
// member or one of the assigned ones
func (m *Member) IsAssignedTo(trainerID int64) bool {
	if m.PrimaryTrainerID != nil && *m.PrimaryTrainerID == trainerID {
		return true
	}
	for _, id := range m.AssignedTrainerIDs {
		if id == trainerID {
			return true
		}
	}
	return false
}
