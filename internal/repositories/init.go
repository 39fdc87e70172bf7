package repositories

import (
	"github.com/bionicotaku/lingo-services-greeter/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProviderSet 暴露 Repository 层的构造函数供 Wire 依赖注入使用。
var ProviderSet = wire.NewSet(
	NewGreetingRepo,
)

// NewGreetingRepo 根据连接池是否可用选择存储实现：
// 有 DSN 时使用 PostgreSQL，否则退化为内存存储（夹具模式）。
func NewGreetingRepo(db *pgxpool.Pool, logger log.Logger) services.GreetingRepo {
	if db == nil {
		return NewMemoryGreetingRepository(logger)
	}
	return NewGreetingRepository(db, logger)
}
