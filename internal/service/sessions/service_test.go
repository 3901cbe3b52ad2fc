package sessions

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/session"
	"github.com/m04kA/SMC-GymService/internal/service/sessions/models"
	"github.com/m04kA/SMC-GymService/pkg/logger"
	"github.com/m04kA/SMC-GymService/pkg/ptr"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

type fakeSessionRepo struct {
	sessions  map[int64]*domain.Session
	updated   []*domain.Session
	filters   []domain.SessionFilter
	updateErr error
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id int64) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSessionRepo) Find(_ context.Context, f domain.SessionFilter) ([]*domain.Session, error) {
	r.filters = append(r.filters, f)
	var result []*domain.Session
	for _, s := range r.sessions {
		if f.MemberID != nil && s.MemberID != *f.MemberID {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (r *fakeSessionRepo) UpdateStatus(_ context.Context, s *domain.Session) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = append(r.updated, s)
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.sessions[id]; !ok {
		return sessionRepo.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	outcomes []string
}

func (m *fakeMetrics) ObserveTransition(transition, outcome string) {
	m.outcomes = append(m.outcomes, transition+":"+outcome)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

const (
	sessionID = int64(7)
	memberID  = int64(10)
)

// Сессия 2026-10-20 10:00-11:00 UTC
func scheduledSession() *domain.Session {
	return &domain.Session{
		ID:        sessionID,
		TrainerID: 1,
		MemberID:  memberID,
		Date:      time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		Interval: types.TimeInterval{
			Start: types.TimeOfDay(10 * 60),
			End:   types.TimeOfDay(11 * 60),
		},
		Status: domain.StatusScheduled,
	}
}

func newTestService(now time.Time) (*Service, *fakeSessionRepo, *fakeMetrics) {
	repo := &fakeSessionRepo{sessions: map[int64]*domain.Session{sessionID: scheduledSession()}}
	metrics := &fakeMetrics{}
	svc := NewService(repo, fakeTxManager{}, domain.DefaultLifecycle(), metrics, logger.NewNop())
	svc.timeProvider = fixedTime{now: now}
	return svc, repo, metrics
}

func TestCancelByMember_Cutoff(t *testing.T) {
	t.Run("90 minutes before start", func(t *testing.T) {
		svc, repo, metrics := newTestService(time.Date(2026, 10, 20, 8, 30, 0, 0, time.UTC))

		_, err := svc.CancelByMember(context.Background(), sessionID, memberID, nil)

		assert.ErrorIs(t, err, domain.ErrCancellationTooLate)
		assert.Empty(t, repo.updated)
		assert.Equal(t, domain.StatusScheduled, repo.sessions[sessionID].Status)
		assert.Equal(t, []string{"cancel_by_member:cancellation_too_late"}, metrics.outcomes)
	})

	t.Run("150 minutes before start", func(t *testing.T) {
		now := time.Date(2026, 10, 20, 7, 30, 0, 0, time.UTC)
		svc, repo, metrics := newTestService(now)

		resp, err := svc.CancelByMember(context.Background(), sessionID, memberID, ptr.Ptr("заболел"))
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCancelledByMember), resp.Status)
		require.NotNil(t, resp.CancelledAt)
		assert.Equal(t, now, *resp.CancelledAt)
		assert.Equal(t, "заболел", *resp.CancellationReason)
		require.Len(t, repo.updated, 1)
		assert.Equal(t, []string{"cancel_by_member:ok"}, metrics.outcomes)
	})

	t.Run("after start", func(t *testing.T) {
		svc, _, _ := newTestService(time.Date(2026, 10, 20, 10, 5, 0, 0, time.UTC))

		_, err := svc.CancelByMember(context.Background(), sessionID, memberID, nil)
		assert.ErrorIs(t, err, domain.ErrCancellationAlreadyPast)
	})

	t.Run("not the owner", func(t *testing.T) {
		svc, repo, metrics := newTestService(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))

		_, err := svc.CancelByMember(context.Background(), sessionID, memberID+1, nil)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.updated)
		assert.Equal(t, []string{"cancel_by_member:access_denied"}, metrics.outcomes)
	})
}

func TestCancelByAdmin(t *testing.T) {
	// администратор может отменить даже после начала
	svc, repo, _ := newTestService(time.Date(2026, 10, 20, 10, 30, 0, 0, time.UTC))

	resp, err := svc.CancelByAdmin(context.Background(), sessionID, nil)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Nil(t, resp.CancellationReason)

	// повторная отмена запрещена
	_, err = svc.CancelByAdmin(context.Background(), sessionID, nil)
	assert.ErrorIs(t, err, domain.ErrSessionNotScheduled)
	assert.Len(t, repo.updated, 1)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc, repo, metrics := newTestService(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	reason := strings.Repeat("я", domain.MaxCancellationReasonLength+1)

	_, err := svc.CancelByAdmin(context.Background(), sessionID, &reason)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.CancelByMember(context.Background(), sessionID, memberID, &reason)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, repo.updated)
	assert.Empty(t, metrics.outcomes)

	ok := strings.Repeat("я", domain.MaxCancellationReasonLength)
	_, err = svc.CancelByAdmin(context.Background(), sessionID, &ok)
	assert.NoError(t, err)
}

func TestMarkCompleted(t *testing.T) {
	svc, _, metrics := newTestService(time.Date(2026, 10, 20, 11, 5, 0, 0, time.UTC))

	resp, err := svc.MarkCompleted(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Nil(t, resp.CancelledAt)

	_, err = svc.MarkCompleted(context.Background(), sessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotScheduled)

	_, err = svc.MarkCompleted(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	assert.Equal(t, []string{"complete:ok", "complete:session_not_scheduled", "complete:session_not_found"}, metrics.outcomes)
}

func TestTransition_RepositoryError(t *testing.T) {
	svc, repo, metrics := newTestService(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	repo.updateErr = assert.AnError

	_, err := svc.MarkCompleted(context.Background(), sessionID)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, []string{"complete:internal"}, metrics.outcomes)
}

func TestGetByID_Access(t *testing.T) {
	svc, _, _ := newTestService(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	resp, err := svc.GetByID(ctx, sessionID, models.Actor{UserID: memberID})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)

	_, err = svc.GetByID(ctx, sessionID, models.Actor{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(ctx, sessionID, models.Actor{UserID: 99, IsAdmin: true})
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, 404, models.Actor{IsAdmin: true})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestList_MemberScope(t *testing.T) {
	svc, repo, _ := newTestService(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	resp, err := svc.List(ctx, &models.ListSessionsRequest{}, models.Actor{UserID: memberID})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.filters[0].MemberID)
	assert.Equal(t, memberID, *repo.filters[0].MemberID)

	_, err = svc.List(ctx, &models.ListSessionsRequest{MemberID: ptr.Ptr(int64(99))}, models.Actor{UserID: memberID})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err = svc.List(ctx, &models.ListSessionsRequest{MemberID: ptr.Ptr(int64(99))}, models.Actor{UserID: 1, IsAdmin: true})
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.NotNil(t, resp.Sessions)

	_, err = svc.List(ctx, &models.ListSessionsRequest{Status: ptr.Ptr("lost")}, models.Actor{IsAdmin: true})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	svc, repo, _ := newTestService(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))

	require.NoError(t, svc.Delete(context.Background(), sessionID))
	assert.Empty(t, repo.sessions)

	err := svc.Delete(context.Background(), sessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
