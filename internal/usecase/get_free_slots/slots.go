package get_free_slots

import (
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// generateSlots нарезает рабочее окно на слоты фиксированной длительности
// Слот, выходящий за конец окна, отбрасывается
func generateSlots(window types.TimeInterval, duration int) []types.TimeInterval {
	slots := make([]types.TimeInterval, 0)

	for start := window.Start.Minutes(); start+duration <= window.End.Minutes(); start += duration {
		slots = append(slots, types.TimeInterval{
			Start: types.TimeOfDay(start),
			End:   types.TimeOfDay(start + duration),
		})
	}

	return slots
}

// dropStarted убирает слоты, которые уже начались
func dropStarted(slots []types.TimeInterval, now types.TimeOfDay) []types.TimeInterval {
	result := make([]types.TimeInterval, 0, len(slots))
	for _, slot := range slots {
		if slot.Start >= now {
			result = append(result, slot)
		}
	}
	return result
}

// dropBusy убирает слоты, пересекающиеся с живыми сессиями тренера
func dropBusy(
	slots []types.TimeInterval,
	sessions []*domain.Session,
	date time.Time,
	policy domain.ConflictPolicy,
) []types.TimeInterval {
	result := make([]types.TimeInterval, 0, len(slots))
	for _, slot := range slots {
		candidate := domain.ConflictCandidate{Date: date, Interval: slot}
		if !domain.HasConflict(sessions, candidate, policy) {
			result = append(result, slot)
		}
	}
	return result
}
