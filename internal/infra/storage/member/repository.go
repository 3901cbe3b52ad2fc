package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymService/pkg/psqlbuilder"
)

// assignedTrainersColumn закрепленные тренеры одним массивом, чтобы не делать второй запрос
const assignedTrainersColumn = "ARRAY(SELECT mt.trainer_id FROM member_trainers mt WHERE mt.member_id = m.id ORDER BY mt.trainer_id) AS assigned_trainer_ids"

// Repository справочник членов клуба (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория членов клуба
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает члена клуба вместе со списком закрепленных тренеров
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"m.id",
		"m.full_name",
		"m.status",
		"m.primary_trainer_id",
		assignedTrainersColumn,
		"m.created_at",
		"m.updated_at",
	).
		From("members m").
		Where(squirrel.Eq{"m.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var member domain.Member
	var assigned []int64
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&member.ID,
		&member.FullName,
		&member.Status,
		&member.PrimaryTrainerID,
		pq.Array(&assigned),
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan member: %w", ErrScanRow, err)
	}

	member.AssignedTrainerIDs = assigned
	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time

	return &member, nil
}
