package retention

import (
	"github.com/bionicotaku/lingo-services-greeter/internal/services"

	"github.com/go-kratos/kratos/v2/log"
)

// ProvideRunner 将问候用例包装为清理 Runner。
func ProvideRunner(uc *services.GreetingUsecase, cfg Config, logger log.Logger) *Runner {
	if uc == nil || logger == nil {
		return nil
	}
	return NewRunner(uc, cfg, logger)
}
