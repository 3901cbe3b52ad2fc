package get_trainer_availability

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/trainers/models"
)

type TrainerService interface {
	GetAvailability(ctx context.Context, trainerID int64) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
