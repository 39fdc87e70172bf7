// Package httpserver wires the inbound HTTP server and its middleware stack.
package httpserver

import (
	stdhttp "net/http"

	"github.com/bionicotaku/lingo-services-greeter/internal/controllers"
	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/telemetry"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	kmetrics "github.com/go-kratos/kratos/v2/middleware/metrics"
	"github.com/go-kratos/kratos/v2/middleware/ratelimit"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(
	c *configloader.ServerConfig,
	tel *telemetry.Telemetry,
	greeting *controllers.GreetingHandler,
	logger log.Logger,
) *khttp.Server {
	opts := []khttp.ServerOption{
		khttp.Middleware(
			recovery.Recovery(),
			metadata.Server(
				// WithPropagatedPrefix 会替换默认前缀，x-md- 需显式保留。
				metadata.WithPropagatedPrefix("x-md-", "x-greeter-"),
			),
			ratelimit.Server(),
			kmetrics.Server(
				kmetrics.WithSeconds(tel.SecondsHistogram),
				kmetrics.WithRequests(tel.RequestCounter),
			),
			logging.Server(logger),
		),
	}
	if c.Network != "" {
		opts = append(opts, khttp.Network(c.Network))
	}
	if c.Address != "" {
		opts = append(opts, khttp.Address(c.Address))
	}
	if c.Timeout > 0 {
		opts = append(opts, khttp.Timeout(c.Timeout))
	}

	srv := khttp.NewServer(opts...)

	srv.Handle("/healthz", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusOK)
	}))

	srv.Handle("/readyz", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		// 预留 readiness 校验钩子：内存模式恒为就绪，接入数据库后可在此检查连接池。
		w.WriteHeader(stdhttp.StatusOK)
	}))

	srv.Handle("/metrics", promhttp.HandlerFor(tel.PrometheusRegistry, promhttp.HandlerOpts{}))

	greeting.RegisterRoutes(srv)
	return srv
}
