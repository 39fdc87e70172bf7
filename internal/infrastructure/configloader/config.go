package configloader

import "time"

// RuntimeConfig 聚合归一化后的强类型配置，供下游 Wire 注入使用。
type RuntimeConfig struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Greeting      GreetingConfig
	Retention     RetentionConfig
	Observability ObservabilityConfig
}

// ServerConfig 描述 HTTP 服务器监听参数。
type ServerConfig struct {
	Network string
	Address string
	Timeout time.Duration
}

// DatabaseConfig 描述 PostgreSQL 连接池参数。DSN 为空时服务退化为内存存储。
type DatabaseConfig struct {
	DSN               string
	MaxOpenConns      int
	MinOpenConns      int
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	Schema            string
	PreparedStmts     bool
}

// GreetingConfig 描述问候组装的尺寸上限。
type GreetingConfig struct {
	// MaxMessageBytes 为 0 时表示不限制。
	MaxMessageBytes int
}

// RetentionConfig 描述历史记录清理任务参数。
type RetentionConfig struct {
	Interval   time.Duration
	TTL        time.Duration
	BatchLimit int
}

// ObservabilityConfig 描述追踪与指标导出参数。
type ObservabilityConfig struct {
	GlobalAttributes map[string]string
	Tracing          *TracingConfig
	Metrics          *MetricsConfig
}

// TracingConfig 为追踪导出配置。
type TracingConfig struct {
	Enabled       bool
	Exporter      string
	Endpoint      string
	Insecure      bool
	SamplingRatio float64
	Required      bool
}

// MetricsConfig 为指标导出配置。
type MetricsConfig struct {
	Enabled             bool
	Exporter            string
	Endpoint            string
	Insecure            bool
	Interval            time.Duration
	DisableRuntimeStats bool
	Required            bool
}

// rawBootstrap 与 YAML 配置文件一一对应；duration 以字符串承载，
// 由 normalize 阶段解析为 time.Duration。
type rawBootstrap struct {
	Server struct {
		HTTP struct {
			Network string `json:"network"`
			Addr    string `json:"addr"`
			Timeout string `json:"timeout"`
		} `json:"http"`
	} `json:"server"`
	Greeting struct {
		MaxMessageBytes int `json:"max_message_bytes"`
	} `json:"greeting"`
	Data struct {
		Postgres struct {
			DSN                      string `json:"dsn"`
			MaxOpenConns             int    `json:"max_open_conns"`
			MinOpenConns             int    `json:"min_open_conns"`
			MaxConnLifetime          string `json:"max_conn_lifetime"`
			MaxConnIdleTime          string `json:"max_conn_idle_time"`
			HealthCheckPeriod        string `json:"health_check_period"`
			Schema                   string `json:"schema"`
			EnablePreparedStatements bool   `json:"enable_prepared_statements"`
		} `json:"postgres"`
	} `json:"data"`
	Retention struct {
		Interval   string `json:"interval"`
		TTL        string `json:"ttl"`
		BatchLimit int    `json:"batch_limit"`
	} `json:"retention"`
	Observability struct {
		GlobalAttributes map[string]string `json:"global_attributes"`
		Tracing          *struct {
			Enabled       bool    `json:"enabled"`
			Exporter      string  `json:"exporter"`
			Endpoint      string  `json:"endpoint"`
			Insecure      bool    `json:"insecure"`
			SamplingRatio float64 `json:"sampling_ratio"`
			Required      bool    `json:"required"`
		} `json:"tracing"`
		Metrics *struct {
			Enabled             bool   `json:"enabled"`
			Exporter            string `json:"exporter"`
			Endpoint            string `json:"endpoint"`
			Insecure            bool   `json:"insecure"`
			Interval            string `json:"interval"`
			DisableRuntimeStats bool   `json:"disable_runtime_stats"`
			Required            bool   `json:"required"`
		} `json:"metrics"`
	} `json:"observability"`
}
