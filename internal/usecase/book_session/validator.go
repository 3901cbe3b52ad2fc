package book_session

import (
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// Validator проверяет запрос на бронирование на снимке данных
// Не имеет состояния кроме политик, безопасен для конкурентного использования
type Validator struct {
	policies Policies
}

// NewValidator создает валидатор с указанными политиками конфликтов
func NewValidator(policies Policies) *Validator {
	return &Validator{policies: policies}
}

// Validate выполняет проверки в фиксированном порядке и возвращает первую
// нарушенную. При успехе возвращает черновик сессии для сохранения
func (v *Validator) Validate(req *Request, snap *Snapshot) (*domain.Session, error) {
	// 1. Входные данные
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Тренер существует
	trainer := snap.Trainer
	if trainer == nil {
		return nil, domain.ErrTrainerNotFound
	}

	// 3. Тренер активен
	if !trainer.IsActive() {
		return nil, domain.ErrTrainerInactive
	}

	// 4. Тренер принимает новых клиентов (только для члена клуба)
	if req.InitiatedBy == InitiatorMember && !trainer.IsAvailableForNewClients {
		return nil, domain.ErrTrainerNotAcceptingClients
	}

	// 5. Член клуба существует
	member := snap.Member
	if member == nil {
		return nil, domain.ErrMemberNotFound
	}

	// 6. Членство активно
	if !member.IsActive() {
		return nil, domain.ErrMemberNotActive
	}

	// 7. Тренер закреплен за членом клуба (только для члена клуба)
	if req.InitiatedBy == InitiatorMember && !member.IsAssignedTo(trainer.ID) {
		return nil, domain.ErrNotAssigned
	}

	date := domain.DateOnly(req.Date)

	// 8. Дата не в прошлом (сравнение только дат)
	if date.Before(domain.DateOnly(snap.Today)) {
		return nil, domain.ErrPastDate
	}

	// 9. Рабочее время тренера
	if err := trainer.Availability.CheckOpenFor(domain.WeekdayOf(date), req.Interval); err != nil {
		return nil, err
	}

	candidate := domain.ConflictCandidate{Date: date, Interval: req.Interval}

	// 10. Календарь тренера
	if domain.HasConflict(snap.TrainerSessions, candidate, v.policies.TrainerSide(req.InitiatedBy)) {
		return nil, domain.ErrTrainerDoubleBooked
	}

	// 11. Календарь члена клуба
	if domain.HasConflict(snap.MemberSessions, candidate, v.policies.Member) {
		return nil, domain.ErrMemberDoubleBooked
	}

	// 12. Черновик сессии
	return &domain.Session{
		TrainerID: trainer.ID,
		MemberID:  member.ID,
		Date:      date,
		Interval:  req.Interval,
		Status:    domain.StatusScheduled,
		Notes:     req.Notes,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", domain.ErrInvalidInput)
	}

	if req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainerId must be positive", domain.ErrInvalidInput)
	}

	if req.MemberID <= 0 {
		return fmt.Errorf("%w: memberId must be positive", domain.ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}

	if err := req.Interval.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if !req.InitiatedBy.IsValid() {
		return fmt.Errorf("%w: unknown initiator %q", domain.ErrInvalidInput, req.InitiatedBy)
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", domain.ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
