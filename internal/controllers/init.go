package controllers

import (
	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/configloader"

	"github.com/google/wire"
)

// ProviderSet exposes controller/handler constructors for DI.
var ProviderSet = wire.NewSet(
	ProvideHandlerTimeouts,
	NewBaseHandler,
	NewGreetingHandler,
)

// ProvideHandlerTimeouts 从服务器配置推导各类 Handler 的超时策略。
func ProvideHandlerTimeouts(c *configloader.ServerConfig) HandlerTimeouts {
	if c == nil {
		return HandlerTimeouts{}
	}
	return HandlerTimeouts{Default: c.Timeout}
}
