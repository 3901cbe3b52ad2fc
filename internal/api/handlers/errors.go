package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// Сообщения для доменных причин отказа
var reasonMessages = map[string]string{
	"trainer_not_found":             "тренер не найден",
	"member_not_found":              "член клуба не найден",
	"session_not_found":             "сессия не найдена",
	"trainer_inactive":              "тренер не активен",
	"trainer_not_accepting_clients": "тренер не принимает новых клиентов",
	"member_not_active":             "членство не активно",
	"not_assigned":                  "тренер не закреплен за членом клуба",
	"session_not_scheduled":         "сессия уже завершена или отменена",
	"past_date":                     "дата сессии в прошлом",
	"day_off":                       "у тренера выходной в этот день",
	"outside_working_hours":         "время вне рабочих часов тренера",
	"trainer_double_booked":         "у тренера уже есть сессия в это время",
	"member_double_booked":          "у члена клуба уже есть сессия в это время",
	"cancellation_too_late":         "слишком поздно для отмены сессии",
	"cancellation_already_past":     "сессия уже началась",
	"no_working_days":               "в расписании должен быть хотя бы один рабочий день",
	"invalid_window":                "некорректное рабочее окно",
}

// StatusFor HTTP статус для доменной ошибки; 0 - ошибка не доменная
func StatusFor(err error) int {
	switch domain.Kind(err) {
	case domain.ErrInvalidInput:
		return http.StatusBadRequest
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrInvalidState, domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrUnavailable, domain.ErrCancellation:
		return http.StatusUnprocessableEntity
	default:
		return 0
	}
}

// RespondDomainError отвечает на доменную ошибку и возвращает true;
// для остальных ошибок ничего не пишет и возвращает false
func RespondDomainError(w http.ResponseWriter, err error) bool {
	status := StatusFor(err)
	if status == 0 {
		return false
	}
	reason := domain.Code(err)
	message, ok := reasonMessages[reason]
	if !ok {
		// для ошибок валидации отдаем детали
		message = err.Error()
	}
	RespondErrorWithReason(w, status, reason, message)
	return true
}
