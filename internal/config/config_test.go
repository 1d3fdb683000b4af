package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PCAL_DB", "PCAL_DELIMITER", "PCAL_LAYOUT", "PCAL_TZ", "PCAL_NOW",
	"PCAL_LOG_LEVEL", "PCAL_LOG_FORMAT",
}

// clearEnv unsets every PCAL_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultDB, cfg.DB)
	assert.Equal(t, "/", cfg.Delimiter)
	assert.Equal(t, "yyyy/MM/dd", cfg.Layout)
	assert.Equal(t, "Asia/Tehran", cfg.TZ)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)

	_, fixed := cfg.FixedNow()
	assert.False(t, fixed)
	assert.Equal(t, "Asia/Tehran", cfg.Location().String())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PCAL_DB", "/tmp/x.db")
	t.Setenv("PCAL_DELIMITER", "-")
	t.Setenv("PCAL_LAYOUT", "P3")
	t.Setenv("PCAL_TZ", "UTC")
	t.Setenv("PCAL_NOW", "1710892800000")
	t.Setenv("PCAL_LOG_LEVEL", "debug")
	t.Setenv("PCAL_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DB)
	assert.Equal(t, "-", cfg.Delimiter)
	assert.Equal(t, "P3", cfg.Layout)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)

	now, fixed := cfg.FixedNow()
	require.True(t, fixed)
	assert.Equal(t, int64(1710892800000), now.UnixMilli())
}

func TestLoadNowZeroPinsEpoch(t *testing.T) {
	clearEnv(t)
	t.Setenv("PCAL_NOW", "0")

	cfg, err := Load()
	require.NoError(t, err)
	now, fixed := cfg.FixedNow()
	require.True(t, fixed)
	assert.Equal(t, int64(0), now.UnixMilli())
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PCAL_LOG_LEVEL", "loud"},
		{"PCAL_LOG_FORMAT", "xml"},
		{"PCAL_TZ", "Mars/Olympus"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PCAL_LAYOUT", "Y/m/d")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PCAL_DELIMITER=.\nPCAL_LAYOUT=ignored\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Delimiter)
	assert.Equal(t, "Y/m/d", cfg.Layout, "environment wins over .env")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
