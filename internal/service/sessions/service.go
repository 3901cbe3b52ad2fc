package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/session"
	"github.com/m04kA/SMC-GymService/internal/service/sessions/models"
)

// Названия переходов для метрик
const (
	transitionComplete     = "complete"
	transitionAdminCancel  = "cancel_by_admin"
	transitionMemberCancel = "cancel_by_member"
	outcomeOK              = "ok"
)

// Service сервис для чтения сессий и переходов их жизненного цикла
type Service struct {
	sessionRepo  SessionRepository
	txManager    TransactionManager
	lifecycle    domain.Lifecycle
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	sessionRepo SessionRepository,
	txManager TransactionManager,
	lifecycle domain.Lifecycle,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		lifecycle:    lifecycle,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает сессию по ID
// Член клуба может видеть только свои сессии
func (s *Service) GetByID(ctx context.Context, id int64, actor models.Actor) (*models.SessionResponse, error) {
	s.logger.Info("GetByID: fetching session id=%d for user=%d", id, actor.UserID)

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repoError("GetByID", id, err)
	}

	if !actor.CanAccess(session) {
		s.logger.Warn("GetByID: access denied for user=%d to session id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainSession(session), nil
}

// List получает сессии по фильтру
// Для члена клуба фильтр всегда ограничен его собственными сессиями
func (s *Service) List(ctx context.Context, req *models.ListSessionsRequest, actor models.Actor) (*models.SessionListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	if !actor.IsAdmin {
		if filter.MemberID != nil && *filter.MemberID != actor.UserID {
			s.logger.Warn("List: user=%d requested sessions of member=%d", actor.UserID, *filter.MemberID)
			return nil, ErrAccessDenied
		}
		memberID := actor.UserID
		filter.MemberID = &memberID
	}

	sessions, err := s.sessionRepo.Find(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d sessions for user=%d", len(sessions), actor.UserID)
	return models.FromDomainSessionList(sessions), nil
}

// MarkCompleted переводит сессию в completed (администратор)
func (s *Service) MarkCompleted(ctx context.Context, id int64) (*models.SessionResponse, error) {
	return s.transition(ctx, transitionComplete, id, func(session *domain.Session, now time.Time) error {
		return s.lifecycle.Complete(session, now)
	})
}

// CancelByAdmin отменяет сессию администратором без ограничений по времени
func (s *Service) CancelByAdmin(ctx context.Context, id int64, reason *string) (*models.SessionResponse, error) {
	if err := validateReason(reason); err != nil {
		return nil, err
	}

	return s.transition(ctx, transitionAdminCancel, id, func(session *domain.Session, now time.Time) error {
		return s.lifecycle.CancelByAdmin(session, now, reason)
	})
}

// CancelByMember отменяет сессию членом клуба
// Разрешено, только если до начала осталось не меньше порога отмены
func (s *Service) CancelByMember(ctx context.Context, id int64, memberID int64, reason *string) (*models.SessionResponse, error) {
	if err := validateReason(reason); err != nil {
		return nil, err
	}

	return s.transition(ctx, transitionMemberCancel, id, func(session *domain.Session, now time.Time) error {
		if session.MemberID != memberID {
			s.logger.Warn("CancelByMember: member=%d is not the owner of session id=%d", memberID, id)
			return ErrAccessDenied
		}
		return s.lifecycle.CancelByMember(session, now, reason)
	})
}

// Delete удаляет сессию без проверок статуса (администратор)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting session id=%d", id)

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		return s.repoError("Delete", id, err)
	}

	s.logger.Info("Delete: session id=%d deleted", id)
	return nil
}

// transition загружает сессию с блокировкой строки, применяет переход и сохраняет результат
func (s *Service) transition(
	ctx context.Context,
	name string,
	id int64,
	apply func(session *domain.Session, now time.Time) error,
) (*models.SessionResponse, error) {
	s.logger.Info("Transition %s: session id=%d", name, id)

	var result *domain.Session

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем сессию (FOR UPDATE)
		session, err := s.sessionRepo.GetByID(txCtx, id)
		if err != nil {
			return s.repoError(name, id, err)
		}

		// 2. Применяем переход
		if err := apply(session, s.timeProvider.Now()); err != nil {
			s.logger.Warn("Transition %s: session id=%d rejected: %v", name, id, err)
			return err
		}

		// 3. Сохраняем
		if err := s.sessionRepo.UpdateStatus(txCtx, session); err != nil {
			return s.repoError(name, id, err)
		}

		result = session
		return nil
	})

	s.observe(name, err)

	if err != nil {
		if domain.Kind(err) == nil && !errors.Is(err, ErrAccessDenied) && !errors.Is(err, ErrInternal) {
			s.logger.Error("Transition %s: transaction failed for session id=%d: %v", name, id, err)
			return nil, fmt.Errorf("%w: %s - transaction failed: %v", ErrInternal, name, err)
		}
		return nil, err
	}

	s.logger.Info("Transition %s: session id=%d is now %s", name, id, result.Status)
	return models.FromDomainSession(result), nil
}

func (s *Service) observe(transition string, err error) {
	if s.metrics == nil {
		return
	}
	outcome := outcomeOK
	if errors.Is(err, ErrAccessDenied) {
		outcome = "access_denied"
	} else if err != nil {
		outcome = domain.Code(err)
	}
	s.metrics.ObserveTransition(transition, outcome)
}

// repoError переводит ошибку репозитория в ошибку сервиса
func (s *Service) repoError(op string, id int64, err error) error {
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		s.logger.Warn("%s: session id=%d not found", op, id)
		return domain.ErrSessionNotFound
	}
	s.logger.Error("%s: repository error for session id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validateReason(reason *string) error {
	if reason != nil && len([]rune(*reason)) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters", domain.ErrInvalidInput, domain.MaxCancellationReasonLength)
	}
	return nil
}
