package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("%w: trainerId must be positive", domain.ErrInvalidInput), want: http.StatusBadRequest},
		{err: domain.ErrNoWorkingDays, want: http.StatusBadRequest},
		{err: domain.ErrSessionNotFound, want: http.StatusNotFound},
		{err: domain.ErrMemberNotActive, want: http.StatusConflict},
		{err: domain.ErrSessionNotScheduled, want: http.StatusConflict},
		{err: domain.ErrDayOff, want: http.StatusUnprocessableEntity},
		{err: domain.ErrTrainerDoubleBooked, want: http.StatusConflict},
		{err: domain.ErrCancellationTooLate, want: http.StatusUnprocessableEntity},
		{err: assert.AnError, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestRespondDomainError(t *testing.T) {
	t.Run("reason", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.True(t, RespondDomainError(w, domain.ErrMemberDoubleBooked))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "member_double_booked", body.Reason)
		assert.Equal(t, reasonMessages["member_double_booked"], body.Message)
	})

	t.Run("validation details", func(t *testing.T) {
		w := httptest.NewRecorder()
		err := fmt.Errorf("%w: notes must be at most 500 characters", domain.ErrInvalidInput)
		require.True(t, RespondDomainError(w, err))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "invalid_input", body.Reason)
		assert.Equal(t, err.Error(), body.Message)
	})

	t.Run("not a domain error", func(t *testing.T) {
		w := httptest.NewRecorder()
		assert.False(t, RespondDomainError(w, assert.AnError))
		assert.Zero(t, w.Body.Len())
	})
}
