// Package telemetry prepares the metric instruments shared by the HTTP server.
package telemetry

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	kmetrics "github.com/go-kratos/kratos/v2/middleware/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	promexp "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Telemetry bundles the shared metric instruments and registry.
type Telemetry struct {
	MeterProvider      *sdkmetric.MeterProvider
	RequestCounter     metric.Int64Counter
	SecondsHistogram   metric.Float64Histogram
	Greetings          *GreetingMetrics
	PrometheusRegistry *prometheus.Registry
}

// GreetingMetrics 聚合问候域的业务指标，与 HTTP 层的请求指标分开管理。
type GreetingMetrics struct {
	Created metric.Int64Counter
}

// RecordCreated 累加问候创建计数。nil 接收者为 no-op，
// 便于不导出指标的二进制复用同一个用例。
func (m *GreetingMetrics) RecordCreated(ctx context.Context) {
	if m == nil || m.Created == nil {
		return
	}
	m.Created.Add(ctx, 1)
}

// NewTelemetry prepares OpenTelemetry metrics instruments and a Prometheus exporter.
func NewTelemetry(logger log.Logger) (*Telemetry, func(), error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	exporter, err := promexp.New(
		promexp.WithRegisterer(registry),
		promexp.WithoutUnits(),
	)
	if err != nil {
		return nil, nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithView(kmetrics.DefaultSecondsHistogramView(kmetrics.DefaultServerSecondsHistogramName)),
	)
	otel.SetMeterProvider(mp)

	meter := mp.Meter("lingo-services-greeter")

	requestCounter, err := kmetrics.DefaultRequestsCounter(meter, kmetrics.DefaultServerRequestsCounterName)
	if err != nil {
		return nil, nil, err
	}
	secondsHistogram, err := kmetrics.DefaultSecondsHistogram(meter, kmetrics.DefaultServerSecondsHistogramName)
	if err != nil {
		return nil, nil, err
	}
	greetingsCreated, err := meter.Int64Counter(
		"greetings_created_total",
		metric.WithDescription("Total greetings composed and persisted."),
	)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mp.Shutdown(ctx); err != nil {
			log.NewHelper(logger).Warnf("shutdown meter provider: %v", err)
		}
	}

	return &Telemetry{
		MeterProvider:      mp,
		RequestCounter:     requestCounter,
		SecondsHistogram:   secondsHistogram,
		Greetings:          &GreetingMetrics{Created: greetingsCreated},
		PrometheusRegistry: registry,
	}, cleanup, nil
}

// ProvideGreetingMetrics 从 Telemetry 中拆出问候域指标，供业务层注入。
func ProvideGreetingMetrics(t *Telemetry) *GreetingMetrics {
	if t == nil {
		return nil
	}
	return t.Greetings
}
