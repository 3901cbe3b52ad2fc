package models

import (
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// DaySchedule расписание одного дня недели
type DaySchedule struct {
	Weekday   string  `json:"weekday"` // "monday"
	IsWorking bool    `json:"isWorking"`
	StartTime *string `json:"startTime,omitempty"` // "09:00"
	EndTime   *string `json:"endTime,omitempty"`   // "17:00"
}

// UpdateAvailabilityRequest запрос на замену недельного расписания
// Дни, которых нет в запросе, считаются выходными
type UpdateAvailabilityRequest struct {
	TrainerID int64
	Days      []DaySchedule
}

// ToDomain конвертирует request в domain модель
func (r *UpdateAvailabilityRequest) ToDomain() (domain.WeeklyAvailability, error) {
	var availability domain.WeeklyAvailability
	seen := make(map[domain.Weekday]bool, len(r.Days))

	for _, d := range r.Days {
		weekday, err := domain.ParseWeekday(d.Weekday)
		if err != nil {
			return availability, err
		}
		if seen[weekday] {
			return availability, fmt.Errorf("%w: duplicate weekday %s", domain.ErrInvalidInput, weekday)
		}
		seen[weekday] = true

		if !d.IsWorking {
			availability[weekday] = domain.DayOff()
			continue
		}

		if d.StartTime == nil || d.EndTime == nil {
			return availability, fmt.Errorf("%s: %w", weekday, domain.ErrInvalidWindow)
		}
		window, err := types.ParseTimeInterval(*d.StartTime, *d.EndTime)
		if err != nil {
			return availability, fmt.Errorf("%s: %w: %w", weekday, domain.ErrInvalidWindow, err)
		}
		availability[weekday] = domain.DaySchedule{IsWorking: true, Window: &window}
	}

	return availability, nil
}

// AvailabilityResponse недельное расписание тренера
type AvailabilityResponse struct {
	TrainerID int64         `json:"trainerId"`
	Days      []DaySchedule `json:"days"`
}

// FromDomainAvailability конвертирует domain модель в response
// В ответе всегда семь дней, начиная с понедельника
func FromDomainAvailability(trainerID int64, a domain.WeeklyAvailability) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		TrainerID: trainerID,
		Days:      make([]DaySchedule, 0, domain.DaysInWeek),
	}
	for i := range a {
		weekday := domain.Weekday(i)
		day := a.Day(weekday)
		dto := DaySchedule{Weekday: weekday.String(), IsWorking: day.IsWorking}
		if day.IsWorking && day.Window != nil {
			start, end := day.Window.Start.String(), day.Window.End.String()
			dto.StartTime = &start
			dto.EndTime = &end
		}
		resp.Days = append(resp.Days, dto)
	}
	return resp
}
