package update_trainer_availability

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/trainers/models"
)

type TrainerService interface {
	UpdateAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
