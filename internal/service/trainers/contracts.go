package trainers

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// TrainerRepository интерфейс репозитория тренеров
type TrainerRepository interface {
	GetByID(ctx context.Context, trainerID int64) (*domain.Trainer, error)
	ReplaceAvailability(ctx context.Context, trainerID int64, availability domain.WeeklyAvailability) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
