package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Run("uses defaults when environment is empty", func(t *testing.T) {
		cfg := NewConfig()

		assert.Equal(t, int32(8189), cfg.HTTP.Port)
		assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
		assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
		assert.Equal(t, DefaultDatabasePath, cfg.Database.Target())
		assert.Empty(t, cfg.HTTP.CORSAllowedOrigins)
		assert.Equal(t, "warn", cfg.Database.LogLevel)
		assert.Equal(t, DefaultStoreQueryTimeout, cfg.Store.QueryTimeout)
		assert.Empty(t, cfg.UI.TemplatesPath)
		assert.False(t, cfg.Tracing.Enabled)
		assert.Equal(t, "locallibrary", cfg.Tracing.ServiceName)
		assert.InDelta(t, 0.1, cfg.Tracing.SampleRatio, 1e-9)
	})

	t.Run("reads overrides from environment", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("DATABASE_PATH", "/tmp/library.db")
		t.Setenv("STORE_QUERY_TIMEOUT", "250ms")
		t.Setenv("OTEL_ENABLED", "true")
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")

		cfg := NewConfig()

		assert.Equal(t, int32(9000), cfg.HTTP.Port)
		assert.Equal(t, "/tmp/library.db", cfg.Database.Path)
		assert.Equal(t, 250*time.Millisecond, cfg.Store.QueryTimeout)
		assert.True(t, cfg.Tracing.Enabled)
		assert.Equal(t, "collector:4318", cfg.Tracing.OTLPEndpoint)
	})

	t.Run("postgres targets the DSN", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", " Postgres ")
		t.Setenv("DATABASE_DSN", "host=localhost user=library dbname=library")

		cfg := NewConfig()

		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "host=localhost user=library dbname=library", cfg.Database.Target())
	})

	t.Run("splits CORS origins", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://status.example.org, ,http://localhost:3000")

		assert.Equal(t, []string{"https://status.example.org", "http://localhost:3000"}, NewConfig().HTTP.CORSAllowedOrigins)
	})

	t.Run("clamps sampler ratio", func(t *testing.T) {
		t.Setenv("OTEL_SAMPLER_RATIO", "3.5")
		assert.Equal(t, 1.0, NewConfig().Tracing.SampleRatio)

		t.Setenv("OTEL_SAMPLER_RATIO", "-1")
		assert.Equal(t, 0.0, NewConfig().Tracing.SampleRatio)
	})
}
