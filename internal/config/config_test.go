package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "gym"
user = "gym"

[booking]
timezone = "Europe/Moscow"
member_live_statuses = ["scheduled", "completed"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "host=db port=5432 user=gym password= dbname=gym sslmode=disable", cfg.Database.DSN())

	assert.Equal(t, 120*time.Minute, cfg.Booking.MemberCancellationCutoff())
	assert.True(t, cfg.Booking.TrainerPolicy().IsLive(domain.StatusCompleted))
	assert.True(t, cfg.Booking.MemberPolicy().IsLive(domain.StatusCompleted))

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_DefaultPolicies(t *testing.T) {
	cfg := Default()
	cfg.Database.DBName = "gym"
	require.NoError(t, cfg.Validate())

	trainer := cfg.Booking.TrainerPolicy()
	member := cfg.Booking.MemberPolicy()

	assert.True(t, trainer.IsLive(domain.StatusScheduled))
	assert.True(t, trainer.IsLive(domain.StatusCompleted))
	assert.True(t, member.IsLive(domain.StatusScheduled))
	assert.False(t, member.IsLive(domain.StatusCompleted))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown status",
			content: "[database]\ndbname = \"gym\"\n[booking]\ntrainer_live_statuses = [\"booked\"]\n",
		},
		{
			name:    "empty policy",
			content: "[database]\ndbname = \"gym\"\n[booking]\nmember_live_statuses = []\n",
		},
		{
			name:    "bad timezone",
			content: "[database]\ndbname = \"gym\"\n[booking]\ntimezone = \"Mars/Olympus\"\n",
		},
		{
			name:    "missing dbname",
			content: "[server]\nhttp_port = 8080\n",
		},
		{
			name:    "redis without ttl",
			content: "[database]\ndbname = \"gym\"\n[redis]\nenabled = true\nlock_ttl = 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}
