package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// Actor кто выполняет операцию (из заголовков шлюза)
type Actor struct {
	UserID  int64
	IsAdmin bool
}

// CanAccess администратор видит все сессии, член клуба - только свои
func (a Actor) CanAccess(s *domain.Session) bool {
	return a.IsAdmin || s.MemberID == a.UserID
}

// ListSessionsRequest фильтр списка сессий
type ListSessionsRequest struct {
	TrainerID *int64
	MemberID  *int64
	Date      *time.Time
	Status    *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSessionsRequest) ToDomainFilter() (domain.SessionFilter, error) {
	filter := domain.SessionFilter{
		TrainerID: r.TrainerID,
		MemberID:  r.MemberID,
	}

	if r.Date != nil {
		date := domain.DateOnly(*r.Date)
		filter.Date = &date
	}

	if r.Status != nil {
		status := domain.SessionStatus(*r.Status)
		if !status.IsValid() {
			return filter, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *r.Status)
		}
		filter.StatusIn = []domain.SessionStatus{status}
	}

	return filter, nil
}

// SessionResponse ответ с данными сессии
type SessionResponse struct {
	ID                 int64      `json:"id"`
	TrainerID          int64      `json:"trainerId"`
	MemberID           int64      `json:"memberId"`
	Date               string     `json:"date"`      // "2026-10-20"
	StartTime          string     `json:"startTime"` // "10:00"
	EndTime            string     `json:"endTime"`   // "11:00"
	Status             string     `json:"status"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// SessionListResponse список сессий
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}

// FromDomainSession конвертирует domain модель в response
func FromDomainSession(s *domain.Session) *SessionResponse {
	return &SessionResponse{
		ID:                 s.ID,
		TrainerID:          s.TrainerID,
		MemberID:           s.MemberID,
		Date:               s.Date.Format(domain.DateFormat),
		StartTime:          s.Interval.Start.String(),
		EndTime:            s.Interval.End.String(),
		Status:             string(s.Status),
		Notes:              s.Notes,
		CancellationReason: s.CancellationReason,
		CancelledAt:        s.CancelledAt,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// FromDomainSessionList конвертирует список domain моделей в response
func FromDomainSessionList(sessions []*domain.Session) *SessionListResponse {
	result := &SessionListResponse{
		Sessions: make([]SessionResponse, 0, len(sessions)),
		Total:    len(sessions),
	}
	for _, s := range sessions {
		result.Sessions = append(result.Sessions, *FromDomainSession(s))
	}
	return result
}
