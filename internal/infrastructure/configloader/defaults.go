package configloader

import "time"

const (
	// defaultConfPath is the fallback configuration directory when no overrides are provided.
	defaultConfPath = "configs"
	// defaultEnvironment is used when APP_ENV is missing.
	defaultEnvironment = "development"
	// defaultServiceName labels logs and metrics when SERVICE_NAME is missing.
	defaultServiceName = "greeter"
	// defaultServiceVersion is reported when the binary carries no ldflags version.
	defaultServiceVersion = "dev"

	// defaultHTTPAddress is the listen address when the config omits server.http.addr.
	defaultHTTPAddress = "0.0.0.0:8000"
	// defaultHTTPTimeout bounds request handling when the config omits server.http.timeout.
	defaultHTTPTimeout = time.Second

	// defaultRetentionInterval spaces prune sweeps.
	defaultRetentionInterval = time.Hour
	// defaultRetentionTTL keeps thirty days of greeting history.
	defaultRetentionTTL = 720 * time.Hour
	// defaultRetentionBatchLimit caps rows deleted per sweep.
	defaultRetentionBatchLimit = 1000
)

const (
	envConfPath       = "CONF_PATH"
	envServiceName    = "SERVICE_NAME"
	envServiceVersion = "SERVICE_VERSION"
	envAppEnv         = "APP_ENV"
	envDatabaseURL    = "DATABASE_URL"
	envPort           = "PORT"
)

var envFileNames = []string{".env.local", ".env"}
