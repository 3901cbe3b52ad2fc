package trainer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

const (
	trainersTable     = "trainers"
	availabilityTable = "trainer_availability"
)

// Repository справочник тренеров и их недельного расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тренеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает тренера вместе с недельным расписанием
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"status",
		"is_available_for_new_clients",
		"created_at",
		"updated_at",
	).
		From(trainersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var trainer domain.Trainer
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&trainer.ID,
		&trainer.FullName,
		&trainer.Status,
		&trainer.IsAvailableForNewClients,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan trainer: %w", ErrScanRow, err)
	}

	trainer.CreatedAt = createdAt.Time
	trainer.UpdatedAt = updatedAt.Time

	availability, err := r.GetAvailability(ctx, id)
	if err != nil {
		return nil, err
	}
	trainer.Availability = availability

	return &trainer, nil
}

// GetAvailability получает недельное расписание тренера
// Дни без записи считаются выходными
func (r *Repository) GetAvailability(ctx context.Context, trainerID int64) (domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var availability domain.WeeklyAvailability

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_working",
		"start_minute",
		"end_minute",
	).
		From(availabilityTable).
		Where(squirrel.Eq{"trainer_id": trainerID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return availability, fmt.Errorf("%w: GetAvailability - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return availability, fmt.Errorf("%w: GetAvailability - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday int
		var isWorking bool
		var start, end sql.NullInt64

		if err := rows.Scan(&weekday, &isWorking, &start, &end); err != nil {
			return availability, fmt.Errorf("%w: GetAvailability - scan row: %w", ErrScanRow, err)
		}

		day, err := toDaySchedule(domain.Weekday(weekday), isWorking, start, end)
		if err != nil {
			return availability, fmt.Errorf("%w: trainer=%d: %v", ErrInvalidAvailability, trainerID, err)
		}
		availability[weekday] = day
	}

	if err := rows.Err(); err != nil {
		return availability, fmt.Errorf("%w: GetAvailability - rows error: %w", ErrScanRow, err)
	}

	return availability, nil
}

// ReplaceAvailability полностью заменяет недельное расписание тренера
// Должен вызываться внутри транзакции, чтобы удаление и вставка были атомарными
func (r *Repository) ReplaceAvailability(ctx context.Context, trainerID int64, availability domain.WeeklyAvailability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// 1. Обновляем updated_at тренера и заодно проверяем его существование
	query, args, err := psqlbuilder.Update(trainersTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": trainerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReplaceAvailability - touch trainer: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAvailability - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTrainerNotFound
	}

	// 2. Удаляем старое расписание
	query, args, err = psqlbuilder.Delete(availabilityTable).
		Where(squirrel.Eq{"trainer_id": trainerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceAvailability - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceAvailability - delete availability: %w", ErrExecQuery, err)
	}

	// 3. Вставляем по строке на каждый день недели
	insert := psqlbuilder.Insert(availabilityTable).
		Columns("trainer_id", "weekday", "is_working", "start_minute", "end_minute")

	for i, day := range availability {
		var start, end interface{}
		if day.IsWorking && day.Window != nil {
			start, end = day.Window.Start, day.Window.End
		}
		insert = insert.Values(trainerID, i, day.IsWorking, start, end)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAvailability - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceAvailability - insert availability: %w", ErrExecQuery, err)
	}

	return nil
}

// toDaySchedule собирает расписание дня из строки БД
func toDaySchedule(weekday domain.Weekday, isWorking bool, start, end sql.NullInt64) (domain.DaySchedule, error) {
	if !weekday.IsValid() {
		return domain.DaySchedule{}, fmt.Errorf("weekday %d out of range", weekday)
	}
	if !isWorking {
		return domain.DayOff(), nil
	}
	if !start.Valid || !end.Valid {
		return domain.DaySchedule{}, fmt.Errorf("%s: working day without window", weekday)
	}

	window, err := types.NewTimeInterval(types.TimeOfDay(start.Int64), types.TimeOfDay(end.Int64))
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("%s: %v", weekday, err)
	}

	return domain.WorkingDay(window)
}
