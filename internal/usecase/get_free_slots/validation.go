package get_free_slots

import (
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// validateRequest валидирует входные данные запроса и подставляет длительность по умолчанию
func validateRequest(req *Request) error {
	if req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", domain.ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}

	if req.DurationMinutes == 0 {
		req.DurationMinutes = DefaultDurationMinutes
	}

	if req.DurationMinutes < MinDurationMinutes || req.DurationMinutes >= types.MinutesPerDay {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			domain.ErrInvalidInput, MinDurationMinutes, types.MinutesPerDay-1)
	}

	return nil
}
