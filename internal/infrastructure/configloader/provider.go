package configloader

import (
	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/logger"

	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/google/wire"
)

// ProviderSet exposes configuration-derived dependencies for Wire graphs.
var ProviderSet = wire.NewSet(
	Load,
	ProvideRuntimeConfig,
	ProvideServiceMetadata,
	ProvideLoggerConfig,
	ProvideServerConfig,
	ProvideDatabaseConfig,
	ProvideGreetingConfig,
	ProvideRetentionConfig,
)

// ProvideRuntimeConfig exposes the normalized runtime configuration.
func ProvideRuntimeConfig(b *Bundle) *RuntimeConfig {
	if b == nil {
		return nil
	}
	return b.Runtime
}

// ProvideServiceMetadata returns the resolved ServiceMetadata from the bundle.
func ProvideServiceMetadata(b *Bundle) ServiceMetadata {
	if b == nil {
		return ServiceMetadata{}
	}
	return b.Service
}

// ProvideLoggerConfig derives the logger configuration from service metadata.
func ProvideLoggerConfig(meta ServiceMetadata) logger.Config {
	return meta.LoggerConfig()
}

// ProvideServerConfig returns the server section of the runtime configuration.
func ProvideServerConfig(rc *RuntimeConfig) *ServerConfig {
	if rc == nil {
		return nil
	}
	return &rc.Server
}

// ProvideDatabaseConfig returns the database section of the runtime configuration.
func ProvideDatabaseConfig(rc *RuntimeConfig) *DatabaseConfig {
	if rc == nil {
		return nil
	}
	return &rc.Database
}

// ProvideGreetingConfig returns the greeting section of the runtime configuration.
func ProvideGreetingConfig(rc *RuntimeConfig) GreetingConfig {
	if rc == nil {
		return GreetingConfig{}
	}
	return rc.Greeting
}

// ProvideRetentionConfig returns the retention section of the runtime configuration.
func ProvideRetentionConfig(rc *RuntimeConfig) RetentionConfig {
	if rc == nil {
		return RetentionConfig{}
	}
	return rc.Retention
}

// ObservabilityConfig 将归一化配置转换为 observability 包的规范化结构。
func (rc *RuntimeConfig) ObservabilityConfig() obswire.ObservabilityConfig {
	if rc == nil {
		return obswire.ObservabilityConfig{}
	}
	src := rc.Observability
	cfg := obswire.ObservabilityConfig{
		GlobalAttributes: cloneStringMap(src.GlobalAttributes),
	}
	if tr := src.Tracing; tr != nil {
		cfg.Tracing = &obswire.TracingConfig{
			Enabled:       tr.Enabled,
			Exporter:      tr.Exporter,
			Endpoint:      tr.Endpoint,
			Insecure:      tr.Insecure,
			SamplingRatio: tr.SamplingRatio,
			Required:      tr.Required,
		}
	}
	if mt := src.Metrics; mt != nil {
		cfg.Metrics = &obswire.MetricsConfig{
			Enabled:             mt.Enabled,
			Exporter:            mt.Exporter,
			Endpoint:            mt.Endpoint,
			Insecure:            mt.Insecure,
			Interval:            mt.Interval,
			DisableRuntimeStats: mt.DisableRuntimeStats,
			Required:            mt.Required,
		}
	}
	return cfg
}
