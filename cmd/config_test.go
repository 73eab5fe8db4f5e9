package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"kitchen/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.BroadcastLog, cfg.BroadcastDriver)
	assert.Equal(t, 256, cfg.BroadcastQueueSize)
	assert.Equal(t, "0 5 0 * * *", cfg.DailyReportSchedule)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=kitchen sslmode=disable", cfg.DSN())
}

func TestLoadConfig_EnvFileAndOverrides(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("KITCHEN_TEST_ONLY=1\nBROADCAST_DRIVER=redis\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("KITCHEN_TEST_ONLY")
		_ = os.Unsetenv("BROADCAST_DRIVER")
	})
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("KITCHEN_TIME_ZONE", "Europe/Berlin")

	cfg, err := cmd.LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, cmd.BroadcastRedis, cfg.BroadcastDriver)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("BROADCAST_DRIVER", "kafka")
	t.Setenv("BROADCAST_QUEUE_SIZE", "0")
	t.Setenv("KITCHEN_TIME_ZONE", "Mars/Olympus")

	_, err := cmd.LoadConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BROADCAST_DRIVER")
	assert.Contains(t, err.Error(), "BROADCAST_QUEUE_SIZE")
	assert.Contains(t, err.Error(), "KITCHEN_TIME_ZONE")
}
