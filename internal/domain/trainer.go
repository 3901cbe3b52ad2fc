package domain

import "time"

// TrainerStatus represents the employment status of a trainer
type TrainerStatus string

const (
	TrainerStatusActive     TrainerStatus = "active"
	TrainerStatusInactive   TrainerStatus = "inactive"
	TrainerStatusOnLeave    TrainerStatus = "on_leave"
	TrainerStatusTerminated TrainerStatus = "terminated"
)

// Trainer is read-only for the booking engine
type Trainer struct {
	ID                       int64
	FullName                 string
	Status                   TrainerStatus
	IsAvailableForNewClients bool
	Availability             WeeklyAvailability

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the trainer can be booked at all
func (t *Trainer) IsActive() bool {
	return t.Status == TrainerStatusActive
}
