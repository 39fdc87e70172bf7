package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-greeter/internal/greeting"
	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/telemetry"
	"github.com/bionicotaku/lingo-services-greeter/internal/models/po"
	"github.com/bionicotaku/lingo-services-greeter/internal/models/vo"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

var (
	// ErrGreetingNotFound 表示指定的问候记录不存在。
	ErrGreetingNotFound = kerrors.NotFound("GREETING_NOT_FOUND", "greeting not found")
	// ErrGreetingTooLarge 表示组装后的消息超出缓冲上限（对应夹具的分配失败）。
	ErrGreetingTooLarge = kerrors.New(429, "GREETING_BUFFER_LIMIT", "greeting message exceeds buffer limit")
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// GreetingRepo describes persistence behavior for greeting records.
type GreetingRepo interface {
	Save(ctx context.Context, record *po.Greeting) (*po.Greeting, error)
	FindByID(ctx context.Context, greetingID uuid.UUID) (*po.Greeting, error)
	ListBySuffix(ctx context.Context, suffix string, limit int) ([]*po.Greeting, error)
	ListAll(ctx context.Context, limit int) ([]*po.Greeting, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}

// ListGreetingsInput 描述列表查询的过滤条件。
type ListGreetingsInput struct {
	Suffix *string // 精确匹配的后缀过滤，nil 表示不过滤
	Limit  int     // 返回条数上限，0 使用默认值
}

// GreetingUsecase encapsulates greeting business logic.
type GreetingUsecase struct {
	repo     GreetingRepo
	composer greeting.Composer
	metrics  *telemetry.GreetingMetrics
	log      *log.Helper
}

// NewGreetingUsecase constructs a Greeting usecase. metrics 可为 nil，
// 此时创建计数不上报。
func NewGreetingUsecase(repo GreetingRepo, cfg configloader.GreetingConfig, metrics *telemetry.GreetingMetrics, logger log.Logger) *GreetingUsecase {
	return &GreetingUsecase{
		repo:     repo,
		composer: greeting.Composer{MaxMessageBytes: cfg.MaxMessageBytes},
		metrics:  metrics,
		log:      log.NewHelper(logger),
	}
}

// CreateGreeting 组装固定问候语加后缀的消息并持久化一条记录。
// 组装超出缓冲上限时返回 ErrGreetingTooLarge，对应夹具的分配失败退出路径。
func (uc *GreetingUsecase) CreateGreeting(ctx context.Context, suffix string) (*vo.Greeting, error) {
	message, err := uc.composer.Compose(suffix)
	if err != nil {
		if errors.Is(err, greeting.ErrBufferLimit) {
			uc.log.WithContext(ctx).Warnf("greeting rejected: suffix_bytes=%d limit=%d", len(suffix), uc.composer.MaxMessageBytes)
			return nil, ErrGreetingTooLarge
		}
		return nil, kerrors.InternalServer("GREETING_COMPOSE_FAILED", "failed to compose greeting").WithCause(err)
	}

	record := &po.Greeting{
		GreetingID: uuid.New(),
		Suffix:     suffix,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}
	saved, err := uc.repo.Save(ctx, record)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("save greeting failed: greeting_id=%s err=%v", record.GreetingID, err)
		return nil, kerrors.InternalServer("GREETING_SAVE_FAILED", "failed to save greeting").WithCause(fmt.Errorf("save greeting: %w", err))
	}

	uc.metrics.RecordCreated(ctx)
	uc.log.WithContext(ctx).Infof("CreateGreeting: %s", saved.Message)
	return vo.NewGreeting(saved), nil
}

// GetGreeting 按 ID 查询问候记录。
func (uc *GreetingUsecase) GetGreeting(ctx context.Context, greetingID uuid.UUID) (*vo.Greeting, error) {
	record, err := uc.repo.FindByID(ctx, greetingID)
	if err != nil {
		if kerrors.IsNotFound(err) {
			return nil, ErrGreetingNotFound
		}
		uc.log.WithContext(ctx).Errorf("find greeting failed: greeting_id=%s err=%v", greetingID, err)
		return nil, kerrors.InternalServer("GREETING_QUERY_FAILED", "failed to query greeting").WithCause(fmt.Errorf("find greeting by id: %w", err))
	}

	uc.log.WithContext(ctx).Debugf("GetGreeting: greeting_id=%s", record.GreetingID)
	return vo.NewGreeting(record), nil
}

// ListGreetings 查询最近的问候记录，可选按后缀精确过滤。
func (uc *GreetingUsecase) ListGreetings(ctx context.Context, input ListGreetingsInput) ([]*vo.Greeting, error) {
	limit := clampLimit(input.Limit)

	var (
		records []*po.Greeting
		err     error
	)
	if input.Suffix != nil {
		records, err = uc.repo.ListBySuffix(ctx, *input.Suffix, limit)
	} else {
		records, err = uc.repo.ListAll(ctx, limit)
	}
	if err != nil {
		uc.log.WithContext(ctx).Errorf("list greetings failed: err=%v", err)
		return nil, kerrors.InternalServer("GREETING_LIST_FAILED", "failed to list greetings").WithCause(fmt.Errorf("list greetings: %w", err))
	}
	return vo.NewGreetings(records), nil
}

// PruneGreetings 删除早于 cutoff 的问候记录，返回删除条数。供清理任务调用。
func (uc *GreetingUsecase) PruneGreetings(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	deleted, err := uc.repo.DeleteOlderThan(ctx, cutoff, limit)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("prune greetings failed: cutoff=%s err=%v", cutoff.Format(time.RFC3339), err)
		return 0, fmt.Errorf("prune greetings: %w", err)
	}
	if deleted > 0 {
		uc.log.WithContext(ctx).Infof("PruneGreetings: deleted=%d cutoff=%s", deleted, cutoff.Format(time.RFC3339))
	}
	return deleted, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
