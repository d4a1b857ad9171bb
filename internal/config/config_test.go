package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "./data/marquee.db", cfg.SQLitePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 100, cfg.RateLimitRPS)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_FromFile(t *testing.T) {
	content := `
http_port: 9000
db_driver: postgres
database_url: "postgres://example/marquee"
log_level: debug
rate_limit_rps: 10
`
	path := filepath.Join(t.TempDir(), "marquee.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "postgres://example/marquee", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10, cfg.RateLimitRPS)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("MARQUEE_HTTP_PORT", "7001")
	t.Setenv("MARQUEE_DB_DRIVER", "postgres")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7001, cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("MARQUEE_DB_DRIVER", "oracle")

	_, err := Load("")
	assert.ErrorContains(t, err, "unsupported db_driver")
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
