package reschedule_session

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// Request частичное изменение сессии администратором
// nil означает "не менять"
type Request struct {
	SessionID int64
	Date      *time.Time
	Interval  *types.TimeInterval
	Status    *domain.SessionStatus // только completed или cancelled
	Notes     *string
}

// ChangesTiming меняется ли дата или время
func (r *Request) ChangesTiming() bool {
	return r.Date != nil || r.Interval != nil
}

// IsEmpty ни одно поле не задано
func (r *Request) IsEmpty() bool {
	return !r.ChangesTiming() && r.Status == nil && r.Notes == nil
}

func lockKey(trainerID int64, date time.Time) string {
	return fmt.Sprintf("booking:trainer:%d:date:%s", trainerID, date.Format(domain.DateFormat))
}

// Response модель ответа с измененной сессией
type Response struct {
	ID                 int64
	TrainerID          int64
	MemberID           int64
	Date               time.Time
	Interval           types.TimeInterval
	Status             domain.SessionStatus
	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func newResponse(s *domain.Session) *Response {
	return &Response{
		ID:                 s.ID,
		TrainerID:          s.TrainerID,
		MemberID:           s.MemberID,
		Date:               s.Date,
		Interval:           s.Interval,
		Status:             s.Status,
		Notes:              s.Notes,
		CancellationReason: s.CancellationReason,
		CancelledAt:        s.CancelledAt,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
