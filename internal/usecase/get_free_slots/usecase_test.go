package get_free_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
	trainerRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/trainer"
	"github.com/m04kA/SMC-GymService/pkg/logger"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

const trainerID int64 = 1

var (
	today    = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC) // четверг
	thursday = time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC)
)

type fakeSessionRepo struct {
	sessions []*domain.Session
	err      error
	calls    int
}

func (r *fakeSessionRepo) Find(_ context.Context, f domain.SessionFilter) ([]*domain.Session, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var result []*domain.Session
	for _, s := range r.sessions {
		if f.TrainerID != nil && s.TrainerID != *f.TrainerID {
			continue
		}
		if f.Date != nil && !domain.SameDate(s.Date, *f.Date) {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

type fakeTrainerRepo struct {
	trainers map[int64]*domain.Trainer
	err      error
}

func (r *fakeTrainerRepo) GetByID(_ context.Context, id int64) (*domain.Trainer, error) {
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.trainers[id]
	if !ok {
		return nil, trainerRepo.ErrTrainerNotFound
	}
	return t, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func interval(t *testing.T, start, end string) types.TimeInterval {
	t.Helper()
	i, err := types.ParseTimeInterval(start, end)
	require.NoError(t, err)
	return i
}

func weekdays(t *testing.T, start, end string) domain.WeeklyAvailability {
	t.Helper()
	var a domain.WeeklyAvailability
	for d := domain.Monday; d <= domain.Friday; d++ {
		day, err := domain.WorkingDay(interval(t, start, end))
		require.NoError(t, err)
		a[d] = day
	}
	return a
}

func session(t *testing.T, id int64, start, end string, status domain.SessionStatus) *domain.Session {
	return &domain.Session{
		ID:        id,
		TrainerID: trainerID,
		MemberID:  10,
		Date:      thursday,
		Interval:  interval(t, start, end),
		Status:    status,
	}
}

type fixture struct {
	uc       *UseCase
	sessions *fakeSessionRepo
	trainers *fakeTrainerRepo
}

func newFixture(t *testing.T, now time.Time) *fixture {
	f := &fixture{
		sessions: &fakeSessionRepo{},
		trainers: &fakeTrainerRepo{trainers: map[int64]*domain.Trainer{
			trainerID: {
				ID:                       trainerID,
				Status:                   domain.TrainerStatusActive,
				IsAvailableForNewClients: true,
				Availability:             weekdays(t, "09:00", "17:00"),
			},
		}},
	}
	f.uc = NewUseCase(
		f.sessions,
		f.trainers,
		domain.NewConflictPolicy(domain.DefaultTrainerLiveStatuses...),
		domain.NewConflictPolicy(domain.DefaultMemberLiveStatuses...),
		time.UTC,
		logger.NewNop(),
	)
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func starts(slots []types.TimeInterval) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.Start.String())
	}
	return result
}

func TestGenerateSlots(t *testing.T) {
	window := interval(t, "09:00", "12:00")

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, starts(generateSlots(window, 60)))
	assert.Equal(t, []string{"09:00", "09:50", "10:40"}, starts(generateSlots(window, 50)))
	assert.Empty(t, generateSlots(window, 240))

	for _, slot := range generateSlots(window, 45) {
		assert.Equal(t, 45, slot.DurationMinutes())
		assert.True(t, window.Contains(slot))
	}
}

func TestExecute_BusySlotsDependOnInitiator(t *testing.T) {
	f := newFixture(t, time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC))
	f.sessions.sessions = []*domain.Session{
		session(t, 1, "10:00", "11:00", domain.StatusScheduled),
		session(t, 2, "12:30", "13:30", domain.StatusCompleted),
		session(t, 3, "15:00", "16:00", domain.StatusCancelledByMember),
	}

	resp, err := f.uc.Execute(context.Background(), &Request{TrainerID: trainerID, Date: thursday})
	require.NoError(t, err)
	assert.Equal(t, DefaultDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, thursday, resp.Date)
	// завершенная сессия занимает тренера для администратора
	assert.Equal(t, []string{"09:00", "11:00", "14:00", "15:00", "16:00"}, starts(resp.Slots))

	resp, err = f.uc.Execute(context.Background(), &Request{TrainerID: trainerID, Date: thursday, AsMember: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, starts(resp.Slots))
}

func TestExecute_TodayDropsStartedSlots(t *testing.T) {
	f := newFixture(t, time.Date(2026, 10, 15, 11, 30, 0, 0, time.UTC))

	resp, err := f.uc.Execute(context.Background(), &Request{TrainerID: trainerID, Date: today})
	require.NoError(t, err)
	assert.Equal(t, []string{"12:00", "13:00", "14:00", "15:00", "16:00"}, starts(resp.Slots))
}

func TestExecute_DayOff(t *testing.T) {
	f := newFixture(t, time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC))

	resp, err := f.uc.Execute(context.Background(), &Request{TrainerID: trainerID, Date: saturday})
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, f.sessions.calls)
}

func TestExecute_Errors(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     *Request
		prepare func(f *fixture)
		wantErr error
	}{
		{
			name:    "past date",
			req:     &Request{TrainerID: trainerID, Date: today.AddDate(0, 0, -1)},
			wantErr: domain.ErrPastDate,
		},
		{
			name:    "unknown trainer",
			req:     &Request{TrainerID: 404, Date: thursday},
			wantErr: domain.ErrTrainerNotFound,
		},
		{
			name: "inactive trainer",
			req:  &Request{TrainerID: trainerID, Date: thursday},
			prepare: func(f *fixture) {
				f.trainers.trainers[trainerID].Status = domain.TrainerStatusOnLeave
			},
			wantErr: domain.ErrTrainerInactive,
		},
		{
			name:    "missing trainer",
			req:     &Request{Date: thursday},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "missing date",
			req:     &Request{TrainerID: trainerID},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "too short",
			req:     &Request{TrainerID: trainerID, Date: thursday, DurationMinutes: 10},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "whole day",
			req:     &Request{TrainerID: trainerID, Date: thursday, DurationMinutes: types.MinutesPerDay},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "trainer repository",
			req:  &Request{TrainerID: trainerID, Date: thursday},
			prepare: func(f *fixture) {
				f.trainers.err = assert.AnError
			},
			wantErr: ErrInternal,
		},
		{
			name: "session repository",
			req:  &Request{TrainerID: trainerID, Date: thursday},
			prepare: func(f *fixture) {
				f.sessions.err = assert.AnError
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, now)
			if tt.prepare != nil {
				tt.prepare(f)
			}

			resp, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
		})
	}
}
