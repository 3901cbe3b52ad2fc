package reschedule_session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	Find(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) (*domain.Session, error)
}

// TrainerRepository интерфейс справочника тренеров
type TrainerRepository interface {
	GetByID(ctx context.Context, trainerID int64) (*domain.Trainer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker блокировка на пару (тренер, дата)
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// Metrics учет переходов жизненного цикла
type Metrics interface {
	ObserveTransition(transition, outcome string)
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
