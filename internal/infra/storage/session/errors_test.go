package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

func TestTranslateConstraint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "trainer overlap",
			err:  &pq.Error{Code: pgExclusionViolation, Constraint: constraintTrainerNoOverlap},
			want: domain.ErrTrainerDoubleBooked,
		},
		{
			name: "member overlap",
			err:  &pq.Error{Code: pgExclusionViolation, Constraint: constraintMemberNoOverlap},
			want: domain.ErrMemberDoubleBooked,
		},
		{
			name: "unknown trainer",
			err:  fmt.Errorf("insert: %w", &pq.Error{Code: pgForeignKeyViolation, Constraint: constraintTrainerFK}),
			want: domain.ErrTrainerNotFound,
		},
		{
			name: "unknown member",
			err:  &pq.Error{Code: pgForeignKeyViolation, Constraint: constraintMemberFK},
			want: domain.ErrMemberNotFound,
		},
		{
			name: "other exclusion",
			err:  &pq.Error{Code: pgExclusionViolation, Constraint: "something_else"},
		},
		{
			name: "not a pq error",
			err:  assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translateConstraint(tt.err))
		})
	}
}

func TestIsSerializationFailure(t *testing.T) {
	wrapped := fmt.Errorf("%w: Find - execute query: %w", ErrExecQuery, &pq.Error{Code: pgSerializationFailure})

	assert.True(t, IsSerializationFailure(wrapped))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: pgExclusionViolation}))
	assert.False(t, IsSerializationFailure(assert.AnError))
}

type fakeRow struct {
	values []interface{}
}

func (r fakeRow) Scan(dest ...interface{}) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.values[i].(int64)
		case *time.Time:
			*p = r.values[i].(time.Time)
		case *types.TimeOfDay:
			if err := p.Scan(r.values[i]); err != nil {
				return err
			}
		case *domain.SessionStatus:
			*p = domain.SessionStatus(r.values[i].(string))
		case **string, **time.Time:
			// NULL
		default:
			if scanner, ok := d.(interface{ Scan(interface{}) error }); ok {
				if err := scanner.Scan(r.values[i]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func TestScanSession_NormalizesDate(t *testing.T) {
	created := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	row := fakeRow{values: []interface{}{
		int64(5), int64(1), int64(2),
		time.Date(2026, 10, 20, 0, 0, 0, 0, time.FixedZone("", 3*60*60)),
		int64(600), int64(660),
		"scheduled",
		nil, nil, nil,
		created, created,
	}}

	s, err := scanSession(row)
	require.NoError(t, err)

	assert.Equal(t, int64(5), s.ID)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), s.Date)
	assert.Equal(t, "10:00-11:00", s.Interval.String())
	assert.Equal(t, domain.StatusScheduled, s.Status)
	assert.Nil(t, s.Notes)
	assert.Equal(t, created, s.CreatedAt)
}
