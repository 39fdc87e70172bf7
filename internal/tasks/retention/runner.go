// Package retention 周期性清理过期的问候记录，作为独立后台任务运行。
package retention

import (
	"context"
	"time"

	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/configloader"

	"github.com/go-kratos/kratos/v2/log"
)

const (
	defaultInterval   = time.Hour
	defaultTTL        = 720 * time.Hour
	defaultBatchLimit = 1000
)

// Config 复用配置加载器的 retention 片段。
type Config = configloader.RetentionConfig

// Pruner 抽象清理操作，由 GreetingUsecase 实现。
type Pruner interface {
	PruneGreetings(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}

// Runner 以固定间隔删除早于 TTL 的问候记录。
type Runner struct {
	pruner Pruner
	cfg    Config
	log    *log.Helper
	clock  func() time.Time
}

// NewRunner 构造清理 Runner，非法配置回退到默认值。
func NewRunner(pruner Pruner, cfg Config, logger log.Logger) *Runner {
	return &Runner{
		pruner: pruner,
		cfg:    sanitizeConfig(cfg),
		log:    log.NewHelper(logger),
		clock:  time.Now,
	}
}

// Run 启动清理循环，直到 ctx 取消。启动时先执行一次清扫，
// 避免长间隔配置下过期数据滞留到首个 tick。
func (r *Runner) Run(ctx context.Context) error {
	r.log.WithContext(ctx).Infof(
		"greeting retention runner started: interval=%s ttl=%s batch_limit=%d",
		r.cfg.Interval, r.cfg.TTL, r.cfg.BatchLimit,
	)

	r.sweep(ctx)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

// sweep 执行单次清扫；失败只记录日志，等待下一个周期重试。
func (r *Runner) sweep(ctx context.Context) {
	cutoff := r.clock().Add(-r.cfg.TTL)
	deleted, err := r.pruner.PruneGreetings(ctx, cutoff, r.cfg.BatchLimit)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		r.log.WithContext(ctx).Errorf("retention sweep failed: %v", err)
		return
	}
	r.log.WithContext(ctx).Debugf("retention sweep done: deleted=%d cutoff=%s", deleted, cutoff.Format(time.RFC3339))
}

func sanitizeConfig(cfg Config) Config {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = defaultBatchLimit
	}
	return cfg
}
