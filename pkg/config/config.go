package config

import "time"

// Config is the root configuration structure for vindex.
// It contains all configuration sections for the HTTP server, the WMI
// override registry, audit recording, and telemetry.
type Config struct {
	// Server contains HTTP server configuration including listen address,
	// timeouts, and header limits.
	Server ServerConfig `yaml:"server"`

	// Registry contains configuration for the manufacturer override
	// registry, including the overrides file and hot-reload settings.
	Registry RegistryConfig `yaml:"registry"`

	// Audit contains configuration for decode audit recording including
	// backend selection and retention settings.
	Audit AuditConfig `yaml:"audit"`

	// Telemetry contains configuration for observability including
	// logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP API server.
type ServerConfig struct {
	// ListenAddress is the address and port for the server to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8099", "0.0.0.0:8099").
	// Default: "127.0.0.1:8099"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body. A zero or negative value means no timeout.
	// Default: 10s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. A zero or negative value means no timeout.
	// Default: 10s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled. If IdleTimeout is zero, ReadTimeout is used.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	// If requests are still in-flight after this timeout, the server will
	// force shutdown.
	// Default: 15s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// RequestTimeout is the per-request handler deadline enforced by
	// middleware. A zero value disables the deadline.
	// Default: 5s
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxHeaderBytes controls the maximum number of bytes the server will
	// read parsing the request header's keys and values, including the
	// request line.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`
}

// RegistryConfig contains configuration for the manufacturer override
// registry layered over the built-in WMI tables.
type RegistryConfig struct {
	// OverridesPath is the path to a YAML file of WMI overrides. When
	// empty, only the built-in tables are consulted.
	OverridesPath string `yaml:"overrides_path"`

	// Watch controls whether the overrides file is watched for changes
	// and reloaded without a restart.
	// Default: false
	Watch bool `yaml:"watch"`

	// DebounceInterval is the quiet period required after file events
	// before a reload is triggered.
	// Default: 100ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}

// AuditConfig contains configuration for decode audit recording.
type AuditConfig struct {
	// Enabled controls whether decode operations are recorded.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Backend selects the audit storage backend: "memory" or "sqlite".
	// Default: "memory"
	Backend string `yaml:"backend"`

	// SQLite contains SQLite backend configuration. Only used when
	// Backend is "sqlite".
	SQLite SQLiteConfig `yaml:"sqlite"`

	// Retention contains audit retention configuration.
	Retention RetentionConfig `yaml:"retention"`
}

// SQLiteConfig contains SQLite storage backend configuration.
type SQLiteConfig struct {
	// Path is the filesystem path to the SQLite database file.
	// Default: "data/audit.db"
	Path string `yaml:"path"`

	// MaxOpenConns limits the number of open database connections.
	// Default: 10
	MaxOpenConns int `yaml:"max_open_conns"`

	// MaxIdleConns limits the number of idle database connections.
	// Default: 5
	MaxIdleConns int `yaml:"max_idle_conns"`

	// BusyTimeout is how long SQLite waits on a locked database before
	// returning SQLITE_BUSY.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`

	// CheckpointInterval is how often the WAL is checkpointed. A zero
	// value disables periodic checkpointing.
	// Default: 5m
	CheckpointInterval time.Duration `yaml:"checkpoint_interval"`
}

// RetentionConfig contains audit record retention configuration.
type RetentionConfig struct {
	// Days is the number of days to keep audit records. Records older
	// than this are pruned by the retention scheduler.
	// Default: 90
	Days int `yaml:"days"`

	// Schedule is a cron expression controlling when pruning runs.
	// Default: "0 3 * * *" (daily at 03:00)
	Schedule string `yaml:"schedule"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", or "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format: "json" or "text".
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes the source file and line of each log call.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether the metrics endpoint is exposed.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path the metrics endpoint is served on.
	// Default: "/metrics"
	Path string `yaml:"path"`
}
