package database

import "github.com/google/wire"

// ProviderSet bundles the PostgreSQL pool provider for Wire.
var ProviderSet = wire.NewSet(NewPgxPool)
