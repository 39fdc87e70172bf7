package httpserver

import "github.com/google/wire"

// ProviderSet bundles the HTTP server provider for Wire.
var ProviderSet = wire.NewSet(NewHTTPServer)
