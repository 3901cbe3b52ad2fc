package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymService/pkg/psqlbuilder"
)

const table = "sessions"

var columns = []string{
	"id",
	"trainer_id",
	"member_id",
	"session_date",
	"start_minute",
	"end_minute",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сессиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию
// Нарушение exclusion-ограничений возвращается как domain.ErrTrainerDoubleBooked / domain.ErrMemberDoubleBooked
func (r *Repository) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"trainer_id",
			"member_id",
			"session_date",
			"start_minute",
			"end_minute",
			"status",
			"notes",
		).
		Values(
			session.TrainerID,
			session.MemberID,
			session.Date.Format(domain.DateFormat),
			session.Interval.Start,
			session.Interval.End,
			session.Status,
			session.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if domainErr := translateConstraint(err); domainErr != nil {
			return nil, domainErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time

	return session, nil
}

// GetByID получает сессию по ID
// Внутри транзакции строка блокируется (FOR UPDATE) до конца транзакции
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	session, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %w", ErrScanRow, err)
	}

	return session, nil
}

// Find получает сессии по фильтру, отсортированные по дате и времени начала
// Если в фильтре указана конкретная дата и запрос выполняется в транзакции,
// найденные строки блокируются (FOR UPDATE) - используется при бронировании
func (r *Repository) Find(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(table)

	if filter.TrainerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"trainer_id": *filter.TrainerID})
	}
	if filter.MemberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"member_id": *filter.MemberID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"session_date": filter.Date.Format(domain.DateFormat)})
	}
	if len(filter.StatusIn) > 0 {
		statuses := make([]string, len(filter.StatusIn))
		for i, s := range filter.StatusIn {
			statuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statuses})
	}

	selectBuilder = selectBuilder.OrderBy("session_date ASC", "start_minute ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Find - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Find - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: Find - scan row: %w", ErrScanRow, err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Find - rows error: %w", ErrScanRow, err)
	}

	return sessions, nil
}

// Update сохраняет изменяемые поля сессии: дату, время, статус, заметки и данные отмены
// Нарушение exclusion-ограничений возвращается как доменная ошибка конфликта
func (r *Repository) Update(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("session_date", session.Date.Format(domain.DateFormat)).
		Set("start_minute", session.Interval.Start).
		Set("end_minute", session.Interval.End).
		Set("status", session.Status).
		Set("notes", session.Notes).
		Set("cancellation_reason", session.CancellationReason).
		Set("cancelled_at", session.CancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": session.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		if domainErr := translateConstraint(err); domainErr != nil {
			return nil, domainErr
		}
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	session.UpdatedAt = updatedAt.Time

	return session, nil
}

// UpdateStatus сохраняет статус сессии и, для отмены, причину и время отмены
func (r *Repository) UpdateStatus(ctx context.Context, session *domain.Session) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", session.Status).
		Set("cancellation_reason", session.CancellationReason).
		Set("cancelled_at", session.CancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": session.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Delete удаляет сессию без проверок статуса
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSession сканирует строку в сессию
func scanSession(row rowScanner) (*domain.Session, error) {
	var session domain.Session
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&session.ID,
		&session.TrainerID,
		&session.MemberID,
		&session.Date,
		&session.Interval.Start,
		&session.Interval.End,
		&session.Status,
		&session.Notes,
		&session.CancellationReason,
		&session.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	session.Date = domain.DateOnly(session.Date)
	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time

	return &session, nil
}
