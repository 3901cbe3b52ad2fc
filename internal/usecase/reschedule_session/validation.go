package reschedule_session

import (
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", domain.ErrInvalidInput)
	}

	if req.SessionID <= 0 {
		return fmt.Errorf("%w: sessionId must be positive", domain.ErrInvalidInput)
	}

	if req.IsEmpty() {
		return fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}

	if req.Interval != nil {
		if err := req.Interval.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}

	if req.Status != nil {
		if *req.Status != domain.StatusCompleted && *req.Status != domain.StatusCancelled {
			return fmt.Errorf("%w: status can only be changed to %s or %s",
				domain.ErrInvalidInput, domain.StatusCompleted, domain.StatusCancelled)
		}
		if req.ChangesTiming() {
			return fmt.Errorf("%w: status and timing cannot be changed together", domain.ErrInvalidInput)
		}
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", domain.ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
