package telemetry

import "github.com/google/wire"

// ProviderSet bundles the telemetry providers for Wire.
var ProviderSet = wire.NewSet(NewTelemetry, ProvideGreetingMetrics)
