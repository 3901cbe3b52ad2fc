package book_session

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	bookSession "github.com/m04kA/SMC-GymService/internal/usecase/book_session"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

var (
	errInvalidDate     = errors.New("invalid date")
	errInvalidTime     = errors.New("invalid time")
	errMissingMemberID = errors.New("memberId is required")
	errForeignMember   = errors.New("member can book only for himself")
)

// BookSessionRequest HTTP request model
type BookSessionRequest struct {
	TrainerID int64   `json:"trainerId"`
	MemberID  *int64  `json:"memberId,omitempty"` // член клуба может не указывать
	Date      string  `json:"date"`               // "2026-10-20"
	StartTime string  `json:"startTime"`          // "10:00"
	EndTime   string  `json:"endTime"`            // "11:00"
	Notes     *string `json:"notes,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID        int64   `json:"id"`
	TrainerID int64   `json:"trainerId"`
	MemberID  int64   `json:"memberId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Инициатор определяется ролью пользователя
func (r *BookSessionRequest) ToUseCaseRequest(userID int64, isAdmin bool) (*bookSession.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	interval, err := types.ParseTimeInterval(r.StartTime, r.EndTime)
	if err != nil {
		return nil, errInvalidTime
	}

	req := &bookSession.Request{
		TrainerID: r.TrainerID,
		Date:      date,
		Interval:  interval,
		Notes:     r.Notes,
	}

	if isAdmin {
		if r.MemberID == nil {
			return nil, errMissingMemberID
		}
		req.MemberID = *r.MemberID
		req.InitiatedBy = bookSession.InitiatorAdmin
		return req, nil
	}

	if r.MemberID != nil && *r.MemberID != userID {
		return nil, errForeignMember
	}
	req.MemberID = userID
	req.InitiatedBy = bookSession.InitiatorMember
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:        resp.ID,
		TrainerID: resp.TrainerID,
		MemberID:  resp.MemberID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.Interval.Start.String(),
		EndTime:   resp.Interval.End.String(),
		Status:    string(resp.Status),
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
