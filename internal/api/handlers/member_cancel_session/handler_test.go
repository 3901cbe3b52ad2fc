package member_cancel_session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/service/sessions"
	"github.com/m04kA/SMC-GymService/internal/service/sessions/models"
	"github.com/m04kA/SMC-GymService/pkg/logger"
)

type fakeService struct {
	sessionID int64
	memberID  int64
	reason    *string
	err       error
}

func (s *fakeService) CancelByMember(_ context.Context, id int64, memberID int64, reason *string) (*models.SessionResponse, error) {
	s.sessionID, s.memberID, s.reason = id, memberID, reason
	if s.err != nil {
		return nil, s.err
	}
	return &models.SessionResponse{ID: id, MemberID: memberID, Status: string(domain.StatusCancelledByMember)}, nil
}

func serve(svc *fakeService, sessionID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/sessions/"+sessionID+"/member-cancel", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"sessionId": sessionID})
	req = req.WithContext(middleware.WithUser(req.Context(), 10, middleware.RoleMember))
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, req)
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}

	w := serve(svc, "7", `{"reason":"заболел"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), svc.sessionID)
	assert.Equal(t, int64(10), svc.memberID)
	require.NotNil(t, svc.reason)
	assert.Equal(t, "заболел", *svc.reason)
	assert.Contains(t, w.Body.String(), `"cancelled_by_member"`)
}

func TestHandle_EmptyBody(t *testing.T) {
	svc := &fakeService{}

	w := serve(svc, "7", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.reason)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		sessionID  string
		err        error
		wantStatus int
	}{
		{name: "bad id", sessionID: "abc", wantStatus: http.StatusBadRequest},
		{name: "too late", sessionID: "7", err: domain.ErrCancellationTooLate, wantStatus: http.StatusUnprocessableEntity},
		{name: "already started", sessionID: "7", err: domain.ErrCancellationAlreadyPast, wantStatus: http.StatusUnprocessableEntity},
		{name: "terminal", sessionID: "7", err: domain.ErrSessionNotScheduled, wantStatus: http.StatusConflict},
		{name: "not found", sessionID: "7", err: domain.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "not the owner", sessionID: "7", err: sessions.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "internal", sessionID: "7", err: sessions.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeService{err: tt.err}, tt.sessionID, "")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
