package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:30", want: 570},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "single digit hour", input: "9:30", wantErr: true},
		{name: "hour 24", input: "24:00", wantErr: true},
		{name: "minute 60", input: "12:60", wantErr: true},
		{name: "with seconds", input: "12:00:00", wantErr: true},
		{name: "dot separator", input: "12.00", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "sign", input: "-1:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestTimeOfDay_On(t *testing.T) {
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	tod, err := ParseTimeOfDay("13:45")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 10, 20, 13, 45, 0, 0, time.UTC), tod.On(date))
}

func TestTimeOfDay_JSON(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"07:05"`), &tod))
	assert.Equal(t, TimeOfDay(425), tod)

	data, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.JSONEq(t, `"07:05"`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`"7:05"`), &tod))
	assert.Error(t, json.Unmarshal([]byte(`425`), &tod))
}

func TestTimeOfDay_Scan(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, tod.Scan(int64(600)))
	assert.Equal(t, "10:00", tod.String())

	assert.Error(t, tod.Scan(int64(MinutesPerDay)))
	assert.Error(t, tod.Scan("10:00"))
}
