package get_free_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	trainerRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/trainer"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// UseCase use case для получения свободных слотов тренера на дату
type UseCase struct {
	sessionRepo   SessionRepository
	trainerRepo   TrainerRepository
	trainerPolicy domain.ConflictPolicy
	memberPolicy  domain.ConflictPolicy
	location      *time.Location
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	trainerRepo TrainerRepository,
	trainerPolicy domain.ConflictPolicy,
	memberPolicy domain.ConflictPolicy,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		sessionRepo:   sessionRepo,
		trainerRepo:   trainerRepo,
		trainerPolicy: trainerPolicy,
		memberPolicy:  memberPolicy,
		location:      location,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreeSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetFreeSlots: trainer=%d, date=%s, duration=%d",
		req.TrainerID, date.Format(domain.DateFormat), req.DurationMinutes)

	resp := &Response{
		TrainerID:       req.TrainerID,
		Date:            date,
		DurationMinutes: req.DurationMinutes,
		Slots:           []types.TimeInterval{},
	}

	// 2. Текущее время в часовом поясе зала
	now := uc.timeProvider.Now().In(uc.location)
	today := domain.DateOnly(now)
	if date.Before(today) {
		uc.logger.Warn("GetFreeSlots: date %s is in the past", date.Format(domain.DateFormat))
		return nil, domain.ErrPastDate
	}

	// 3. Получаем тренера
	trainer, err := uc.trainerRepo.GetByID(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
			uc.logger.Warn("GetFreeSlots: trainer id=%d not found", req.TrainerID)
			return nil, domain.ErrTrainerNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get trainer id=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
	}

	if !trainer.IsActive() {
		uc.logger.Warn("GetFreeSlots: trainer id=%d is %s", req.TrainerID, trainer.Status)
		return nil, domain.ErrTrainerInactive
	}

	// 4. Рабочее окно на день недели
	day := trainer.Availability.Day(domain.WeekdayOf(date))
	if !day.IsWorking || day.Window == nil {
		uc.logger.Info("GetFreeSlots: trainer id=%d does not work on %s", req.TrainerID, date.Format(domain.DateFormat))
		return resp, nil
	}

	// 5. Генерируем слоты; сегодня убираем уже начавшиеся
	slots := generateSlots(*day.Window, req.DurationMinutes)
	if date.Equal(today) {
		slots = dropStarted(slots, types.TimeOfDayFromTime(now))
	}
	if len(slots) == 0 {
		return resp, nil
	}

	// 6. Получаем сессии тренера на дату
	sessions, err := uc.sessionRepo.Find(ctx, domain.SessionFilter{
		TrainerID: &req.TrainerID,
		Date:      &date,
	})
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get sessions of trainer id=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to get sessions: %v", ErrInternal, err)
	}

	// 7. Убираем занятые слоты по политике инициатора
	policy := uc.trainerPolicy
	if req.AsMember {
		policy = uc.memberPolicy
	}
	resp.Slots = dropBusy(slots, sessions, date, policy)

	uc.logger.Info("GetFreeSlots: %d of %d slots free for trainer=%d, date=%s",
		len(resp.Slots), len(slots), req.TrainerID, date.Format(domain.DateFormat))

	return resp, nil
}
