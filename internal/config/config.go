package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Store
		UI
		Tracing
	}

	HTTP struct {
		Port int32
		Host string
		// Origins allowed to read /health and /ping cross-origin; empty disables CORS
		CORSAllowedOrigins []string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver   string // sqlite or postgres
		Path     string // sqlite file
		DSN      string // postgres connection string
		LogLevel string // silent, error, warn, info
	}
	Store struct {
		QueryTimeout time.Duration // 0 disables the per-page deadline
	}
	UI struct {
		TemplatesPath string // Empty means use the embedded views
		StaticPath    string // Empty means use the embedded assets
	}
	Tracing struct {
		Enabled      bool
		ServiceName  string
		Environment  string
		OTLPEndpoint string // Empty falls back to the stdout exporter
		OTLPInsecure bool
		OTLPHeaders  string // Comma-separated key=value pairs
		SampleRatio  float64
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("cors_allowed_origins", "")
	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("store_query_timeout", DefaultStoreQueryTimeout.String())
	v.SetDefault("templates_path", "")
	v.SetDefault("static_path", "")

	// Tracing defaults
	v.SetDefault("otel_enabled", false)
	v.SetDefault("otel_service_name", "locallibrary")
	v.SetDefault("otel_environment", "development")
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_insecure", false)
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_sampler_ratio", 0.1)

	return &Config{
		HTTP: HTTP{
			Port:               v.GetInt32("PORT"),
			Host:               v.GetString("HOST"),
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:   strings.ToLower(strings.TrimSpace(v.GetString("DATABASE_DRIVER"))),
			Path:     v.GetString("DATABASE_PATH"),
			DSN:      v.GetString("DATABASE_DSN"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Store: Store{
			QueryTimeout: v.GetDuration("STORE_QUERY_TIMEOUT"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Tracing: Tracing{
			Enabled:      v.GetBool("OTEL_ENABLED"),
			ServiceName:  v.GetString("OTEL_SERVICE_NAME"),
			Environment:  v.GetString("OTEL_ENVIRONMENT"),
			OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			OTLPInsecure: v.GetBool("OTEL_EXPORTER_OTLP_INSECURE"),
			OTLPHeaders:  v.GetString("OTEL_EXPORTER_OTLP_HEADERS"),
			SampleRatio:  clampRatio(v.GetFloat64("OTEL_SAMPLER_RATIO")),
		},
	}
}

// Target returns what the configured driver connects to: the DSN for postgres,
// the file path otherwise.
func (d Database) Target() string {
	if d.Driver == DriverPostgres {
		return d.DSN
	}
	return d.Path
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func clampRatio(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
