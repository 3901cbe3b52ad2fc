package session

import (
	"errors"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")
)

// Коды ошибок Postgres
const (
	pgExclusionViolation   = "23P01"
	pgForeignKeyViolation  = "23503"
	pgSerializationFailure = "40001"
)

// Имена ограничений из миграций
const (
	constraintTrainerNoOverlap = "sessions_trainer_no_overlap"
	constraintMemberNoOverlap  = "sessions_member_no_overlap"
	constraintTrainerFK        = "sessions_trainer_id_fkey"
	constraintMemberFK         = "sessions_member_id_fkey"
)

// IsSerializationFailure проверяет, что ошибка - конфликт сериализации транзакции
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgSerializationFailure
}

// translateConstraint переводит нарушение ограничения БД в доменную ошибку
// Возвращает nil, если ошибка не относится к известным ограничениям
func translateConstraint(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch pqErr.Code {
	case pgExclusionViolation:
		switch pqErr.Constraint {
		case constraintTrainerNoOverlap:
			return domain.ErrTrainerDoubleBooked
		case constraintMemberNoOverlap:
			return domain.ErrMemberDoubleBooked
		}
	case pgForeignKeyViolation:
		switch pqErr.Constraint {
		case constraintTrainerFK:
			return domain.ErrTrainerNotFound
		case constraintMemberFK:
			return domain.ErrMemberNotFound
		}
	}

	return nil
}
