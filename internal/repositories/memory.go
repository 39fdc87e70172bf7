package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bionicotaku/lingo-services-greeter/internal/models/po"
	"github.com/bionicotaku/lingo-services-greeter/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// MemoryGreetingRepository 是 services.GreetingRepo 的内存实现。
// 在未配置 DSN 的夹具模式下使用，同时作为单元测试的存储桩。
type MemoryGreetingRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*po.Greeting
	log     *log.Helper
}

// NewMemoryGreetingRepository 构造内存版仓储实例。
func NewMemoryGreetingRepository(logger log.Logger) *MemoryGreetingRepository {
	return &MemoryGreetingRepository{
		records: make(map[uuid.UUID]*po.Greeting),
		log:     log.NewHelper(logger),
	}
}

// Save 保存问候记录的副本，避免与调用方共享可变状态。
func (r *MemoryGreetingRepository) Save(_ context.Context, record *po.Greeting) (*po.Greeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *record
	r.records[record.GreetingID] = &clone
	return record, nil
}

// FindByID 按主键查询，未命中返回 ErrGreetingNotFound。
func (r *MemoryGreetingRepository) FindByID(_ context.Context, greetingID uuid.UUID) (*po.Greeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[greetingID]
	if !ok {
		return nil, services.ErrGreetingNotFound
	}
	clone := *record
	return &clone, nil
}

// ListBySuffix 按后缀精确匹配，按创建时间倒序。
func (r *MemoryGreetingRepository) ListBySuffix(_ context.Context, suffix string, limit int) ([]*po.Greeting, error) {
	return r.snapshot(limit, func(record *po.Greeting) bool {
		return record.Suffix == suffix
	}), nil
}

// ListAll 返回最近的问候记录，按创建时间倒序。
func (r *MemoryGreetingRepository) ListAll(_ context.Context, limit int) ([]*po.Greeting, error) {
	return r.snapshot(limit, nil), nil
}

// DeleteOlderThan 删除早于 cutoff 的记录，最旧的优先，单次最多 limit 条。
func (r *MemoryGreetingRepository) DeleteOlderThan(_ context.Context, cutoff time.Time, limit int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []*po.Greeting
	for _, record := range r.records {
		if record.CreatedAt.Before(cutoff) {
			expired = append(expired, record)
		}
	}
	sort.Slice(expired, func(i, j int) bool {
		return expired[i].CreatedAt.Before(expired[j].CreatedAt)
	})
	if limit > 0 && len(expired) > limit {
		expired = expired[:limit]
	}
	for _, record := range expired {
		delete(r.records, record.GreetingID)
	}
	return int64(len(expired)), nil
}

// Len 返回当前记录数，供测试断言使用。
func (r *MemoryGreetingRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

func (r *MemoryGreetingRepository) snapshot(limit int, keep func(*po.Greeting) bool) []*po.Greeting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*po.Greeting
	for _, record := range r.records {
		if keep != nil && !keep(record) {
			continue
		}
		clone := *record
		records = append(records, &clone)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}
