package get_free_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	getFreeSlots "github.com/m04kA/SMC-GymService/internal/usecase/get_free_slots"
)

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	TrainerID       int64      `json:"trainerId"`
	Date            string     `json:"date"`
	DurationMinutes int        `json:"durationMinutes"`
	Slots           []FreeSlot `json:"slots"`
}

// FreeSlot модель свободного слота
type FreeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	slots := make([]FreeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = FreeSlot{
			StartTime: slot.Start.String(),
			EndTime:   slot.End.String(),
		}
	}

	return &FreeSlotsResponse{
		TrainerID:       resp.TrainerID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// duration необязателен
func ToUseCaseRequest(trainerID int64, dateStr, durationStr string) (*getFreeSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getFreeSlots.Request{
		TrainerID: trainerID,
		Date:      date,
	}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
		req.DurationMinutes = duration
	}

	return req, nil
}
