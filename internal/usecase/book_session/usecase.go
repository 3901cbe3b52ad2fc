package book_session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	memberRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/member"
	sessionRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/session"
	trainerRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/trainer"
	"github.com/m04kA/SMC-GymService/pkg/ptr"
)

const outcomeBooked = "booked"

// UseCase use case для бронирования персональной тренировки
type UseCase struct {
	sessionRepo  SessionRepository
	trainerRepo  TrainerRepository
	memberRepo   MemberRepository
	txManager    TransactionManager
	locker       Locker
	validator    *Validator
	location     *time.Location
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс зала, в нем определяется текущая дата
func NewUseCase(
	sessionRepo SessionRepository,
	trainerRepo TrainerRepository,
	memberRepo MemberRepository,
	txManager TransactionManager,
	locker Locker,
	policies Policies,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		sessionRepo:  sessionRepo,
		trainerRepo:  trainerRepo,
		memberRepo:   memberRepo,
		txManager:    txManager,
		locker:       locker,
		validator:    NewValidator(policies),
		location:     location,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет бронирование
// Проверка и вставка выполняются под блокировкой (тренер, дата) в сериализуемой транзакции,
// дополнительно БД защищена exclusion-ограничениями
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	result, err := uc.execute(ctx, req)
	if req != nil && uc.metrics != nil {
		outcome := outcomeBooked
		if err != nil {
			outcome = domain.Code(err)
		}
		uc.metrics.ObserveBooking(string(req.InitiatedBy), outcome)
	}
	if err != nil {
		return nil, err
	}
	return newResponse(result), nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*domain.Session, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSession: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("BookSession: trainer=%d, member=%d, date=%s, time=%s, initiator=%s",
		req.TrainerID, req.MemberID, req.Date.Format(domain.DateFormat), req.Interval, req.InitiatedBy)

	// 2. Текущая дата в часовом поясе зала
	today := domain.DateOnly(uc.timeProvider.Now().In(uc.location))

	// 3. Блокировка на пару (тренер, дата)
	release, err := uc.locker.Acquire(ctx, req.LockKey())
	if err != nil {
		uc.logger.Error("BookSession: failed to acquire lock %s: %v", req.LockKey(), err)
		return nil, fmt.Errorf("%w: failed to acquire lock: %v", ErrInternal, err)
	}
	defer release()

	var result *domain.Session

	// 4. Снимок, проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Загружаем снимок данных
		snap, err := uc.loadSnapshot(txCtx, req, today)
		if err != nil {
			return err
		}

		// 4.2. Проверяем запрос
		draft, err := uc.validator.Validate(req, snap)
		if err != nil {
			uc.logger.Warn("BookSession: rejected: %v", err)
			return err
		}

		// 4.3. Сохраняем сессию
		created, err := uc.sessionRepo.Create(txCtx, draft)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				uc.logger.Warn("BookSession: rejected on insert: %v", err)
				return err
			}
			return uc.storeError("failed to create session", err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации при коммите - параллельное бронирование того же тренера
		if domain.Kind(err) == nil && sessionRepo.IsSerializationFailure(err) {
			uc.logger.Warn("BookSession: serialization failure on commit: %v", err)
			return nil, domain.ErrTrainerDoubleBooked
		}
		if domain.Kind(err) == nil && !errors.Is(err, ErrInternal) {
			uc.logger.Error("BookSession: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("BookSession: successfully booked session id=%d", result.ID)

	return result, nil
}

// loadSnapshot загружает тренера, члена клуба и их сессии на дату запроса
// Отсутствие тренера или члена клуба не является ошибкой здесь - это решает валидатор
func (uc *UseCase) loadSnapshot(ctx context.Context, req *Request, today time.Time) (*Snapshot, error) {
	snap := &Snapshot{Today: today}
	date := domain.DateOnly(req.Date)

	trainer, err := uc.trainerRepo.GetByID(ctx, req.TrainerID)
	if err != nil && !errors.Is(err, trainerRepo.ErrTrainerNotFound) {
		return nil, uc.storeError("failed to get trainer", err)
	}
	snap.Trainer = trainer

	member, err := uc.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil && !errors.Is(err, memberRepo.ErrMemberNotFound) {
		return nil, uc.storeError("failed to get member", err)
	}
	snap.Member = member

	if snap.Trainer == nil || snap.Member == nil {
		return snap, nil
	}

	snap.TrainerSessions, err = uc.sessionRepo.Find(ctx, domain.SessionFilter{
		TrainerID: ptr.Ptr(req.TrainerID),
		Date:      ptr.Ptr(date),
	})
	if err != nil {
		return nil, uc.storeError("failed to get trainer sessions", err)
	}

	snap.MemberSessions, err = uc.sessionRepo.Find(ctx, domain.SessionFilter{
		MemberID: ptr.Ptr(req.MemberID),
		Date:     ptr.Ptr(date),
	})
	if err != nil {
		return nil, uc.storeError("failed to get member sessions", err)
	}

	return snap, nil
}

// storeError переводит ошибку хранилища в ошибку usecase
func (uc *UseCase) storeError(msg string, err error) error {
	if sessionRepo.IsSerializationFailure(err) {
		uc.logger.Warn("BookSession: %s: serialization failure: %v", msg, err)
		return domain.ErrTrainerDoubleBooked
	}
	uc.logger.Error("BookSession: %s: %v", msg, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}
