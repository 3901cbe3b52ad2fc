package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/pkg/types"
)

func interval(t *testing.T, start, end string) types.TimeInterval {
	t.Helper()
	i, err := types.ParseTimeInterval(start, end)
	require.NoError(t, err)
	return i
}

func TestWeekdayOf(t *testing.T) {
	// 2026-10-12 is a Monday
	monday := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, Weekday(i), WeekdayOf(monday.AddDate(0, 0, i)))
	}

	// location and time of day do not matter, only the calendar date
	moscow := time.FixedZone("MSK", 3*60*60)
	assert.Equal(t, Sunday, WeekdayOf(time.Date(2026, 10, 18, 23, 59, 0, 0, moscow)))
	assert.Equal(t, "sunday", Sunday.String())
}

func TestParseWeekday(t *testing.T) {
	w, err := ParseWeekday("thursday")
	require.NoError(t, err)
	assert.Equal(t, Thursday, w)

	_, err = ParseWeekday("Thursday")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDaySchedule_Validate(t *testing.T) {
	inverted := types.TimeInterval{Start: 17 * 60, End: 9 * 60}

	assert.NoError(t, DayOff().Validate())
	assert.ErrorIs(t, DaySchedule{IsWorking: true}.Validate(), ErrInvalidWindow)
	assert.ErrorIs(t, DaySchedule{IsWorking: true, Window: &inverted}.Validate(), ErrInvalidWindow)

	_, err := WorkingDay(inverted)
	assert.ErrorIs(t, err, ErrInvalidWindow)
	assert.ErrorIs(t, err, ErrInvalidInput)

	day, err := WorkingDay(interval(t, "09:00", "17:00"))
	require.NoError(t, err)
	assert.True(t, day.IsWorking)
}

func TestWeeklyAvailability_CheckOpenFor(t *testing.T) {
	var a WeeklyAvailability
	a[Monday] = DaySchedule{IsWorking: true, Window: ptrInterval(interval(t, "09:00", "17:00"))}

	tests := []struct {
		name     string
		weekday  Weekday
		interval types.TimeInterval
		wantErr  error
	}{
		{name: "inside window", weekday: Monday, interval: interval(t, "13:00", "14:00")},
		{name: "whole window", weekday: Monday, interval: interval(t, "09:00", "17:00")},
		{name: "starts before opening", weekday: Monday, interval: interval(t, "08:00", "09:30"), wantErr: ErrOutsideWorkingHours},
		{name: "ends after closing", weekday: Monday, interval: interval(t, "16:30", "17:01"), wantErr: ErrOutsideWorkingHours},
		{name: "day off", weekday: Tuesday, interval: interval(t, "10:00", "11:00"), wantErr: ErrDayOff},
		{name: "invalid weekday", weekday: Weekday(9), interval: interval(t, "10:00", "11:00"), wantErr: ErrDayOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.CheckOpenFor(tt.weekday, tt.interval)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.True(t, a.IsOpenFor(tt.weekday, tt.interval))
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrUnavailable)
			assert.False(t, a.IsOpenFor(tt.weekday, tt.interval))
		})
	}
}

func TestWeeklyAvailability_DayOffIgnoresWindow(t *testing.T) {
	var a WeeklyAvailability
	a[Monday] = DaySchedule{IsWorking: false, Window: ptrInterval(interval(t, "09:00", "17:00"))}
	a[Friday] = DaySchedule{IsWorking: true, Window: ptrInterval(interval(t, "09:00", "17:00"))}

	assert.ErrorIs(t, a.CheckOpenFor(Monday, interval(t, "10:00", "11:00")), ErrDayOff)
}

func TestWeeklyAvailability_Validate(t *testing.T) {
	var empty WeeklyAvailability
	assert.ErrorIs(t, empty.Validate(), ErrNoWorkingDays)

	var broken WeeklyAvailability
	broken[Wednesday] = DaySchedule{IsWorking: true}
	err := broken.Validate()
	assert.ErrorIs(t, err, ErrInvalidWindow)
	assert.Contains(t, err.Error(), "wednesday")

	var ok WeeklyAvailability
	ok[Saturday] = DaySchedule{IsWorking: true, Window: ptrInterval(interval(t, "10:00", "14:00"))}
	assert.NoError(t, ok.Validate())
	assert.Equal(t, 1, ok.WorkingDays())
}

func ptrInterval(i types.TimeInterval) *types.TimeInterval {
	return &i
}
