// Package main 提供问候记录清理 Runner 的独立进程入口，便于后台单独运行。
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	configloader "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/configloader"
	loginfra "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/logger"
	retention "github.com/bionicotaku/lingo-services-greeter/internal/tasks/retention"

	"github.com/go-kratos/kratos/v2/log"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name is the name of the compiled software.
	Name string
	// Version is the version of the compiled software.
	Version string
)

type retentionTaskApp struct {
	Runner *retention.Runner
	Logger log.Logger
}

func newRetentionTaskApp(logger log.Logger, runner *retention.Runner) *retentionTaskApp {
	return &retentionTaskApp{Runner: runner, Logger: logger}
}

func main() {
	ctx := context.Background()

	confFlag := flag.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	flag.Parse()

	params := configloader.Params{ConfPath: *confFlag, Name: Name, Version: Version}
	app, cleanup, err := wireRetentionTask(ctx, params)
	if err != nil {
		// 配置装配失败时注入图尚未产出 logger，用默认元信息构造一个兜底。
		fallback, lerr := loginfra.NewLogger(loginfra.DefaultConfig(Name, Version))
		if lerr != nil {
			fallback = log.NewStdLogger(os.Stderr)
		}
		log.NewHelper(fallback).Errorf("initialize retention task: %v", err)
		os.Exit(1)
	}
	defer cleanup()

	logger := app.Logger
	if logger == nil {
		logger = log.NewStdLogger(os.Stdout)
	}
	helper := log.NewHelper(logger)

	if app.Runner == nil {
		helper.Warn("retention runner disabled (missing configuration)")
		return
	}

	helper.Info("starting greeting retention runner")

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Runner.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		helper.Errorf("retention runner stopped unexpectedly: %v", err)
		os.Exit(1)
	}

	helper.Info("retention runner stopped")
}
