package book_session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	Find(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error)
}

// TrainerRepository интерфейс справочника тренеров
type TrainerRepository interface {
	GetByID(ctx context.Context, trainerID int64) (*domain.Trainer, error)
}

// MemberRepository интерфейс справочника членов клуба
type MemberRepository interface {
	GetByID(ctx context.Context, memberID int64) (*domain.Member, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker блокировка на пару (тренер, дата) вокруг "проверить, затем вставить"
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// Metrics учет результатов бронирования
type Metrics interface {
	ObserveBooking(initiator, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
