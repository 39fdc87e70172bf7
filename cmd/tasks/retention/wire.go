//go:build wireinject
// +build wireinject

// Package main 为 retention 任务 CLI 提供 Wire 依赖注入定义。
package main

import (
	"context"

	configloader "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/database"
	loginfra "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/logger"
	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/telemetry"
	"github.com/bionicotaku/lingo-services-greeter/internal/repositories"
	"github.com/bionicotaku/lingo-services-greeter/internal/services"
	retention "github.com/bionicotaku/lingo-services-greeter/internal/tasks/retention"

	"github.com/google/wire"
)

//go:generate go run github.com/google/wire/cmd/wire

func wireRetentionTask(context.Context, configloader.Params) (*retentionTaskApp, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet,
		loginfra.ProviderSet,
		telemetry.ProviderSet,
		database.ProviderSet,
		repositories.ProviderSet,
		services.ProviderSet,
		retention.ProvideRunner,
		newRetentionTaskApp,
	))
}
