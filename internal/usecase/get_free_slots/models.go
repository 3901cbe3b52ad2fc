package get_free_slots

import (
	"time"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

const (
	// DefaultDurationMinutes длительность слота, если она не указана
	DefaultDurationMinutes = 60
	// MinDurationMinutes минимальная длительность слота
	MinDurationMinutes = 15
)

// Request модель запроса свободных слотов тренера на дату
type Request struct {
	TrainerID       int64     // ID тренера
	Date            time.Time // Дата (время суток игнорируется)
	DurationMinutes int       // Длительность слота, 0 = по умолчанию
	AsMember        bool      // Член клуба видит календарь по своей политике конфликтов
}

// Response модель ответа со свободными слотами
type Response struct {
	TrainerID       int64
	Date            time.Time
	DurationMinutes int
	Slots           []types.TimeInterval
}
