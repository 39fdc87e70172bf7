//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"context"

	"github.com/bionicotaku/lingo-services-greeter/internal/controllers"
	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/database"
	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/httpserver"
	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/telemetry"
	"github.com/bionicotaku/lingo-services-greeter/internal/repositories"
	"github.com/bionicotaku/lingo-services-greeter/internal/services"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

//go:generate go run github.com/google/wire/cmd/wire

// wireApp init kratos application.
func wireApp(context.Context, *configloader.ServerConfig, *configloader.DatabaseConfig, configloader.GreetingConfig, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		telemetry.ProviderSet,
		database.ProviderSet,
		repositories.ProviderSet,
		services.ProviderSet,
		controllers.ProviderSet,
		httpserver.ProviderSet,
		newApp,
	))
}
