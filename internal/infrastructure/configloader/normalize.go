package configloader

import (
	"fmt"
	"time"
)

// normalize 将 raw 配置解析为 RuntimeConfig，填充默认值。
func normalize(raw *rawBootstrap) (*RuntimeConfig, error) {
	if raw == nil {
		raw = &rawBootstrap{}
	}

	rc := &RuntimeConfig{}

	server, err := normalizeServer(raw)
	if err != nil {
		return nil, err
	}
	rc.Server = server

	database, err := normalizeDatabase(raw)
	if err != nil {
		return nil, err
	}
	rc.Database = database

	rc.Greeting = GreetingConfig{MaxMessageBytes: raw.Greeting.MaxMessageBytes}

	retention, err := normalizeRetention(raw)
	if err != nil {
		return nil, err
	}
	rc.Retention = retention

	observability, err := normalizeObservability(raw)
	if err != nil {
		return nil, err
	}
	rc.Observability = observability

	return rc, nil
}

func normalizeServer(raw *rawBootstrap) (ServerConfig, error) {
	src := raw.Server.HTTP
	cfg := ServerConfig{
		Network: src.Network,
		Address: src.Addr,
	}
	if cfg.Address == "" {
		cfg.Address = defaultHTTPAddress
	}
	timeout, err := durationOrDefault(src.Timeout, defaultHTTPTimeout, "server.http.timeout")
	if err != nil {
		return ServerConfig{}, err
	}
	cfg.Timeout = timeout
	return cfg, nil
}

func normalizeDatabase(raw *rawBootstrap) (DatabaseConfig, error) {
	src := raw.Data.Postgres
	cfg := DatabaseConfig{
		DSN:           src.DSN,
		MaxOpenConns:  src.MaxOpenConns,
		MinOpenConns:  src.MinOpenConns,
		Schema:        src.Schema,
		PreparedStmts: src.EnablePreparedStatements,
	}

	var err error
	if cfg.MaxConnLifetime, err = durationOrDefault(src.MaxConnLifetime, 0, "data.postgres.max_conn_lifetime"); err != nil {
		return DatabaseConfig{}, err
	}
	if cfg.MaxConnIdleTime, err = durationOrDefault(src.MaxConnIdleTime, 0, "data.postgres.max_conn_idle_time"); err != nil {
		return DatabaseConfig{}, err
	}
	if cfg.HealthCheckPeriod, err = durationOrDefault(src.HealthCheckPeriod, 0, "data.postgres.health_check_period"); err != nil {
		return DatabaseConfig{}, err
	}
	return cfg, nil
}

func normalizeRetention(raw *rawBootstrap) (RetentionConfig, error) {
	src := raw.Retention
	cfg := RetentionConfig{BatchLimit: src.BatchLimit}

	var err error
	if cfg.Interval, err = durationOrDefault(src.Interval, defaultRetentionInterval, "retention.interval"); err != nil {
		return RetentionConfig{}, err
	}
	if cfg.TTL, err = durationOrDefault(src.TTL, defaultRetentionTTL, "retention.ttl"); err != nil {
		return RetentionConfig{}, err
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = defaultRetentionBatchLimit
	}
	return cfg, nil
}

func normalizeObservability(raw *rawBootstrap) (ObservabilityConfig, error) {
	src := raw.Observability
	cfg := ObservabilityConfig{
		GlobalAttributes: cloneStringMap(src.GlobalAttributes),
	}
	if tr := src.Tracing; tr != nil {
		cfg.Tracing = &TracingConfig{
			Enabled:       tr.Enabled,
			Exporter:      tr.Exporter,
			Endpoint:      tr.Endpoint,
			Insecure:      tr.Insecure,
			SamplingRatio: tr.SamplingRatio,
			Required:      tr.Required,
		}
	}
	if mt := src.Metrics; mt != nil {
		interval, err := durationOrDefault(mt.Interval, 0, "observability.metrics.interval")
		if err != nil {
			return ObservabilityConfig{}, err
		}
		cfg.Metrics = &MetricsConfig{
			Enabled:             mt.Enabled,
			Exporter:            mt.Exporter,
			Endpoint:            mt.Endpoint,
			Insecure:            mt.Insecure,
			Interval:            interval,
			DisableRuntimeStats: mt.DisableRuntimeStats,
			Required:            mt.Required,
		}
	}
	return cfg, nil
}

// validate 检查归一化后的配置是否自洽。
func validate(rc *RuntimeConfig) error {
	if rc.Server.Timeout <= 0 {
		return fmt.Errorf("server.http.timeout must be positive")
	}
	if rc.Greeting.MaxMessageBytes < 0 {
		return fmt.Errorf("greeting.max_message_bytes must not be negative")
	}
	if rc.Database.MinOpenConns < 0 {
		return fmt.Errorf("data.postgres.min_open_conns must not be negative")
	}
	if rc.Database.MaxOpenConns < 0 {
		return fmt.Errorf("data.postgres.max_open_conns must not be negative")
	}
	if rc.Database.MaxOpenConns > 0 && rc.Database.MinOpenConns > rc.Database.MaxOpenConns {
		return fmt.Errorf("data.postgres.min_open_conns exceeds max_open_conns")
	}
	if rc.Retention.Interval <= 0 {
		return fmt.Errorf("retention.interval must be positive")
	}
	if rc.Retention.TTL <= 0 {
		return fmt.Errorf("retention.ttl must be positive")
	}
	return nil
}

// durationOrDefault 解析 duration 字符串，空值回退到默认值。
func durationOrDefault(value string, fallback time.Duration, field string) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}
	return d, nil
}

// cloneStringMap 创建字符串映射的拷贝，避免共享底层数据。
func cloneStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
