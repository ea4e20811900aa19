package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/scorecard/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}

func TestLoad_EnvAndFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCORECARD_ADDR", ":9090")
	t.Setenv("SCORECARD_LOG_LEVEL", "debug")

	cfg, err := config.Load([]string{"-addr", ":7070", "-cors-origins", "http://a.test, http://b.test"})
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ServerAddress, "flags win over the environment")
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "scorecard.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"db-driver": "postgres", "db-dsn": "postgres://localhost/scores"}`), 0o600))

	cfg, err := config.Load([]string{"-config", path})
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "postgres://localhost/scores", cfg.DBDSN)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		args []string
	}{
		{"unknown driver", []string{"-db-driver", "oracle"}},
		{"bad log level", []string{"-log-level", "loud"}},
		{"zero upload size", []string{"-max-upload-bytes", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(tt.args)
			assert.Error(t, err)
		})
	}
}
