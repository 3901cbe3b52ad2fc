package update_trainer_availability

import (
	"github.com/m04kA/SMC-GymService/internal/service/trainers/models"
)

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	Days []models.DaySchedule `json:"days"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateAvailabilityRequest) ToServiceRequest(trainerID int64) *models.UpdateAvailabilityRequest {
	return &models.UpdateAvailabilityRequest{
		TrainerID: trainerID,
		Days:      r.Days,
	}
}
