package get_free_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Find(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error)
}

// TrainerRepository интерфейс справочника тренеров
type TrainerRepository interface {
	GetByID(ctx context.Context, trainerID int64) (*domain.Trainer, error)
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
