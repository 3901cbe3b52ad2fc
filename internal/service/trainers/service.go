package trainers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
	trainerRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/trainer"
	"github.com/m04kA/SMC-GymService/internal/service/trainers/models"
)

// Service сервис недельного расписания тренеров
type Service struct {
	trainerRepo TrainerRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса тренеров
func NewService(trainerRepo TrainerRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		trainerRepo: trainerRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetAvailability получает недельное расписание тренера
func (s *Service) GetAvailability(ctx context.Context, trainerID int64) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetAvailability: fetching availability for trainer=%d", trainerID)

	trainer, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		return nil, s.repoError("GetAvailability", trainerID, err)
	}

	return models.FromDomainAvailability(trainer.ID, trainer.Availability), nil
}

// UpdateAvailability заменяет недельное расписание тренера
// Расписание без рабочих дней или с некорректным окном отклоняется
func (s *Service) UpdateAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("UpdateAvailability: trainer=%d, days=%d", req.TrainerID, len(req.Days))

	// 1. Конвертируем и проверяем расписание
	availability, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("UpdateAvailability: invalid request: %v", err)
		return nil, err
	}
	if err := availability.Validate(); err != nil {
		s.logger.Warn("UpdateAvailability: invalid availability: %v", err)
		return nil, err
	}

	// 2. Заменяем расписание в транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.trainerRepo.ReplaceAvailability(txCtx, req.TrainerID, availability); err != nil {
			return s.repoError("UpdateAvailability", req.TrainerID, err)
		}
		return nil
	})
	if err != nil {
		if domain.Kind(err) == nil && !errors.Is(err, ErrInternal) {
			s.logger.Error("UpdateAvailability: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: UpdateAvailability - transaction failed: %v", ErrInternal, err)
		}
		return nil, err
	}

	s.logger.Info("UpdateAvailability: trainer=%d now works %d days a week", req.TrainerID, availability.WorkingDays())
	return models.FromDomainAvailability(req.TrainerID, availability), nil
}

// repoError переводит ошибку репозитория в ошибку сервиса
func (s *Service) repoError(op string, trainerID int64, err error) error {
	if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
		s.logger.Warn("%s: trainer id=%d not found", op, trainerID)
		return domain.ErrTrainerNotFound
	}
	s.logger.Error("%s: repository error for trainer id=%d: %v", op, trainerID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
