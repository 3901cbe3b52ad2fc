package reschedule_session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/session"
	trainerRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/trainer"
	"github.com/m04kA/SMC-GymService/pkg/ptr"
)

const (
	transitionReschedule = "reschedule"
	outcomeOK            = "ok"
)

// UseCase use case для изменения сессии администратором:
// перенос даты и времени, смена статуса, заметки
type UseCase struct {
	sessionRepo   SessionRepository
	trainerRepo   TrainerRepository
	txManager     TransactionManager
	locker        Locker
	trainerPolicy domain.ConflictPolicy
	memberPolicy  domain.ConflictPolicy
	lifecycle     domain.Lifecycle
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// Перенос выполняет администратор, поэтому календарь тренера проверяется по trainerPolicy
func NewUseCase(
	sessionRepo SessionRepository,
	trainerRepo TrainerRepository,
	txManager TransactionManager,
	locker Locker,
	trainerPolicy domain.ConflictPolicy,
	memberPolicy domain.ConflictPolicy,
	lifecycle domain.Lifecycle,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if lifecycle.Location == nil {
		lifecycle.Location = time.UTC
	}
	return &UseCase{
		sessionRepo:   sessionRepo,
		trainerRepo:   trainerRepo,
		txManager:     txManager,
		locker:        locker,
		trainerPolicy: trainerPolicy,
		memberPolicy:  memberPolicy,
		lifecycle:     lifecycle,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute применяет частичное изменение сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	result, err := uc.execute(ctx, req)
	if uc.metrics != nil {
		outcome := outcomeOK
		if err != nil {
			outcome = domain.Code(err)
		}
		uc.metrics.ObserveTransition(transitionReschedule, outcome)
	}
	if err != nil {
		return nil, err
	}
	return newResponse(result), nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*domain.Session, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleSession: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("RescheduleSession: session id=%d, changes timing=%t", req.SessionID, req.ChangesTiming())

	now := uc.timeProvider.Now()
	today := domain.DateOnly(now.In(uc.lifecycle.Location))

	// 2. Читаем сессию, чтобы определить ключ блокировки
	current, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, uc.storeError("failed to get session", err)
	}

	targetDate := current.Date
	if req.Date != nil {
		targetDate = domain.DateOnly(*req.Date)
	}

	// 3. Блокировка на пару (тренер, целевая дата)
	key := lockKey(current.TrainerID, targetDate)
	release, err := uc.locker.Acquire(ctx, key)
	if err != nil {
		uc.logger.Error("RescheduleSession: failed to acquire lock %s: %v", key, err)
		return nil, fmt.Errorf("%w: failed to acquire lock: %v", ErrInternal, err)
	}
	defer release()

	var result *domain.Session

	// 4. Проверка и сохранение в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Повторно читаем сессию (FOR UPDATE)
		session, err := uc.sessionRepo.GetByID(txCtx, req.SessionID)
		if err != nil {
			return uc.storeError("failed to get session", err)
		}

		// 4.2. Перенос даты и времени
		if req.ChangesTiming() {
			if err := uc.applyTiming(txCtx, session, req, today); err != nil {
				return err
			}
		}

		// 4.3. Смена статуса через жизненный цикл
		if req.Status != nil {
			if err := uc.applyStatus(session, *req.Status, now); err != nil {
				uc.logger.Warn("RescheduleSession: status change rejected: %v", err)
				return err
			}
		}

		// 4.4. Заметки
		if req.Notes != nil {
			session.Notes = req.Notes
		}

		// 4.5. Сохраняем
		updated, err := uc.sessionRepo.Update(txCtx, session)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				uc.logger.Warn("RescheduleSession: rejected on update: %v", err)
				return err
			}
			return uc.storeError("failed to update session", err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if domain.Kind(err) == nil && sessionRepo.IsSerializationFailure(err) {
			uc.logger.Warn("RescheduleSession: serialization failure on commit: %v", err)
			return nil, domain.ErrTrainerDoubleBooked
		}
		if domain.Kind(err) == nil && !errors.Is(err, ErrInternal) {
			uc.logger.Error("RescheduleSession: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("RescheduleSession: session id=%d updated: date=%s, time=%s, status=%s",
		result.ID, result.Date.Format(domain.DateFormat), result.Interval, result.Status)

	return result, nil
}

// applyTiming повторяет проверки бронирования (дата, рабочее время, календари)
// для новой даты и времени, исключая саму сессию
func (uc *UseCase) applyTiming(ctx context.Context, session *domain.Session, req *Request, today time.Time) error {
	if !session.IsScheduled() {
		return domain.ErrSessionNotScheduled
	}

	date := session.Date
	if req.Date != nil {
		date = domain.DateOnly(*req.Date)
	}
	interval := session.Interval
	if req.Interval != nil {
		interval = *req.Interval
	}

	// Дата не в прошлом
	if date.Before(today) {
		return domain.ErrPastDate
	}

	// Рабочее время тренера
	trainer, err := uc.trainerRepo.GetByID(ctx, session.TrainerID)
	if err != nil {
		if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
			return domain.ErrTrainerNotFound
		}
		return uc.storeError("failed to get trainer", err)
	}
	if err := trainer.Availability.CheckOpenFor(domain.WeekdayOf(date), interval); err != nil {
		return err
	}

	candidate := domain.ConflictCandidate{Date: date, Interval: interval, ExcludeSessionID: session.ID}

	// Календарь тренера
	trainerSessions, err := uc.sessionRepo.Find(ctx, domain.SessionFilter{
		TrainerID: ptr.Ptr(session.TrainerID),
		Date:      ptr.Ptr(date),
	})
	if err != nil {
		return uc.storeError("failed to get trainer sessions", err)
	}
	if conflict := domain.FindConflict(trainerSessions, candidate, uc.trainerPolicy); conflict != nil {
		uc.logger.Warn("RescheduleSession: trainer conflict with session id=%d", conflict.ID)
		return domain.ErrTrainerDoubleBooked
	}

	// Календарь члена клуба
	memberSessions, err := uc.sessionRepo.Find(ctx, domain.SessionFilter{
		MemberID: ptr.Ptr(session.MemberID),
		Date:     ptr.Ptr(date),
	})
	if err != nil {
		return uc.storeError("failed to get member sessions", err)
	}
	if conflict := domain.FindConflict(memberSessions, candidate, uc.memberPolicy); conflict != nil {
		uc.logger.Warn("RescheduleSession: member conflict with session id=%d", conflict.ID)
		return domain.ErrMemberDoubleBooked
	}

	session.Date = date
	session.Interval = interval
	return nil
}

func (uc *UseCase) applyStatus(session *domain.Session, status domain.SessionStatus, now time.Time) error {
	switch status {
	case domain.StatusCompleted:
		return uc.lifecycle.Complete(session, now)
	case domain.StatusCancelled:
		return uc.lifecycle.CancelByAdmin(session, now, nil)
	default:
		return fmt.Errorf("%w: unsupported status %q", domain.ErrInvalidInput, status)
	}
}

// storeError переводит ошибку хранилища в ошибку usecase
func (uc *UseCase) storeError(msg string, err error) error {
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		uc.logger.Warn("RescheduleSession: %s: session not found", msg)
		return domain.ErrSessionNotFound
	}
	if sessionRepo.IsSerializationFailure(err) {
		uc.logger.Warn("RescheduleSession: %s: serialization failure: %v", msg, err)
		return domain.ErrTrainerDoubleBooked
	}
	uc.logger.Error("RescheduleSession: %s: %v", msg, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}
