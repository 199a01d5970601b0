package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "localhost"
port = 5432
user = "booking"
password = "secret"
dbname = "roombooking"

[logs]
file = "logs/app.log"
level = "info"

[booking]
open_hour = 8
close_hour = 21
slot_duration_minutes = 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 8, cfg.Booking.OpenHour)
	assert.Equal(t, 21, cfg.Booking.CloseHour)
	assert.Equal(t, 60, cfg.Booking.SlotDurationMinutes)
	assert.Contains(t, cfg.Database.DSN(), "host=localhost")
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "roombooking"
user = "booking"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 8, cfg.Booking.OpenHour)
	assert.Equal(t, 21, cfg.Booking.CloseHour)
	assert.Equal(t, 60, cfg.Booking.SlotDurationMinutes)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "room-images", cfg.FileStorage.Bucket)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
