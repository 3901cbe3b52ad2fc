package book_session

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// Initiator кто инициирует бронирование
type Initiator string

const (
	InitiatorAdmin  Initiator = "admin"
	InitiatorMember Initiator = "member"
)

// IsValid проверяет, что инициатор известен
func (i Initiator) IsValid() bool {
	return i == InitiatorAdmin || i == InitiatorMember
}

// Request модель запроса на бронирование сессии
type Request struct {
	TrainerID   int64              // ID тренера
	MemberID    int64              // ID члена клуба
	Date        time.Time          // Дата сессии (время суток игнорируется)
	Interval    types.TimeInterval // Время начала и окончания
	InitiatedBy Initiator          // Администратор или член клуба
	Notes       *string            // Заметки (опционально)
}

// LockKey ключ блокировки на пару (тренер, дата)
func (r *Request) LockKey() string {
	return fmt.Sprintf("booking:trainer:%d:date:%s", r.TrainerID, r.Date.Format(domain.DateFormat))
}

// Snapshot данные, на основании которых принимается решение о бронировании
// nil в Trainer/Member означает, что сущность не найдена
type Snapshot struct {
	Trainer         *domain.Trainer
	Member          *domain.Member
	TrainerSessions []*domain.Session // сессии тренера на дату запроса
	MemberSessions  []*domain.Session // сессии члена клуба на дату запроса
	Today           time.Time         // текущая дата в часовом поясе зала
}

// Policies политики конфликтов
type Policies struct {
	Trainer domain.ConflictPolicy // календарь тренера при бронировании администратором
	Member  domain.ConflictPolicy // бронирование членом клуба и календарь члена клуба
}

// DefaultPolicies политики по умолчанию
func DefaultPolicies() Policies {
	return Policies{
		Trainer: domain.NewConflictPolicy(domain.DefaultTrainerLiveStatuses...),
		Member:  domain.NewConflictPolicy(domain.DefaultMemberLiveStatuses...),
	}
}

// TrainerSide политика для календаря тренера в зависимости от инициатора
func (p Policies) TrainerSide(initiator Initiator) domain.ConflictPolicy {
	if initiator == InitiatorMember {
		return p.Member
	}
	return p.Trainer
}

// Response модель ответа с созданной сессией
type Response struct {
	ID        int64
	TrainerID int64
	MemberID  int64
	Date      time.Time
	Interval  types.TimeInterval
	Status    domain.SessionStatus
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newResponse(s *domain.Session) *Response {
	return &Response{
		ID:        s.ID,
		TrainerID: s.TrainerID,
		MemberID:  s.MemberID,
		Date:      s.Date,
		Interval:  s.Interval,
		Status:    s.Status,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
