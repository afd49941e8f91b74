package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// isolate points the config search at an empty directory so a developer's
// portfolio.yaml cannot leak into the test.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("PORTFOLIO_CONFIG", "")
	for _, key := range []string{"PORT", "BUCKET_NAME", "CATALOG_FILE", "VIEWS_DIR", "PUBLIC_DIR", "BRAND", "SESSION_TTL", "SIGNED_URL_TTL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.BucketName)
	assert.Equal(t, "./views", cfg.ViewsDir)
	assert.Equal(t, "SHATOM", cfg.Brand)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 24*time.Hour, cfg.SignedURLTTL)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.ServerAddress())
}

func TestLoadFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "9090")
	t.Setenv("BUCKET_NAME", "portfolio-images")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "portfolio-images", cfg.BucketName)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brand: STUDIO\nport: \"7000\"\n"), 0644))
	t.Setenv("PORTFOLIO_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "STUDIO", cfg.Brand)
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv("PORTFOLIO_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{name: "non numeric port", env: map[string]string{"PORT": "http"}, wantErr: ErrInvalidPort},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}, wantErr: ErrInvalidPort},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}, wantErr: ErrInvalidLogLevel},
		{name: "bad session ttl", env: map[string]string{"SESSION_TTL": "soon"}, wantErr: ErrInvalidDuration},
		{name: "negative signed url ttl", env: map[string]string{"SIGNED_URL_TTL": "-1h"}, wantErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
