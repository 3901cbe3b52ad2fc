package reschedule_session

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	rescheduleSession "github.com/m04kA/SMC-GymService/internal/usecase/reschedule_session"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

var (
	errInvalidDate   = errors.New("invalid date")
	errInvalidTime   = errors.New("invalid time")
	errPartialTime   = errors.New("startTime and endTime must be set together")
	errInvalidStatus = errors.New("invalid status")
)

// RescheduleSessionRequest HTTP request model, все поля опциональны
type RescheduleSessionRequest struct {
	Date      *string `json:"date,omitempty"`      // "2026-10-21"
	StartTime *string `json:"startTime,omitempty"` // "10:00"
	EndTime   *string `json:"endTime,omitempty"`   // "11:00"
	Status    *string `json:"status,omitempty"`    // "completed" | "cancelled"
	Notes     *string `json:"notes,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID                 int64   `json:"id"`
	TrainerID          int64   `json:"trainerId"`
	MemberID           int64   `json:"memberId"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleSessionRequest) ToUseCaseRequest(sessionID int64) (*rescheduleSession.Request, error) {
	req := &rescheduleSession.Request{
		SessionID: sessionID,
		Notes:     r.Notes,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, errInvalidDate
		}
		req.Date = &date
	}

	if (r.StartTime == nil) != (r.EndTime == nil) {
		return nil, errPartialTime
	}
	if r.StartTime != nil {
		interval, err := types.ParseTimeInterval(*r.StartTime, *r.EndTime)
		if err != nil {
			return nil, errInvalidTime
		}
		req.Interval = &interval
	}

	if r.Status != nil {
		status := domain.SessionStatus(*r.Status)
		if !status.IsValid() {
			return nil, errInvalidStatus
		}
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleSession.Response) *SessionResponse {
	result := &SessionResponse{
		ID:                 resp.ID,
		TrainerID:          resp.TrainerID,
		MemberID:           resp.MemberID,
		Date:               resp.Date.Format(domain.DateFormat),
		StartTime:          resp.Interval.Start.String(),
		EndTime:            resp.Interval.End.String(),
		Status:             string(resp.Status),
		Notes:              resp.Notes,
		CancellationReason: resp.CancellationReason,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.CancelledAt != nil {
		cancelledAt := resp.CancelledAt.Format(time.RFC3339)
		result.CancelledAt = &cancelledAt
	}
	return result
}
