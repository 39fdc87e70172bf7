// Package repositories 提供数据访问层实现，负责与持久化存储交互。
// 该层实现 Service 层定义的 Repository 接口，隔离底层存储细节。
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-greeter/internal/models/po"
	"github.com/bionicotaku/lingo-services-greeter/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	sqlInsertGreeting = `
INSERT INTO greetings (greeting_id, suffix, message, created_at)
VALUES ($1, $2, $3, $4)`

	sqlFindGreetingByID = `
SELECT greeting_id, suffix, message, created_at
FROM greetings
WHERE greeting_id = $1`

	sqlListGreetings = `
SELECT greeting_id, suffix, message, created_at
FROM greetings
ORDER BY created_at DESC
LIMIT $1`

	sqlListGreetingsBySuffix = `
SELECT greeting_id, suffix, message, created_at
FROM greetings
WHERE suffix = $1
ORDER BY created_at DESC
LIMIT $2`

	sqlDeleteGreetingsOlderThan = `
DELETE FROM greetings
WHERE greeting_id IN (
    SELECT greeting_id FROM greetings
    WHERE created_at < $1
    ORDER BY created_at
    LIMIT $2
)`
)

// GreetingRepository 基于 pgx 连接池实现 services.GreetingRepo。
// 查询数量少且均为单语句，直接内联 SQL，不引入代码生成。
type GreetingRepository struct {
	db  *pgxpool.Pool
	log *log.Helper
}

// NewGreetingRepository 构造 PostgreSQL 版仓储实例。
func NewGreetingRepository(db *pgxpool.Pool, logger log.Logger) *GreetingRepository {
	return &GreetingRepository{
		db:  db,
		log: log.NewHelper(logger),
	}
}

// Save 插入一条问候记录并返回传入的实体。
func (r *GreetingRepository) Save(ctx context.Context, record *po.Greeting) (*po.Greeting, error) {
	_, err := r.db.Exec(ctx, sqlInsertGreeting,
		record.GreetingID, record.Suffix, record.Message, record.CreatedAt)
	if err != nil {
		r.log.WithContext(ctx).Errorf("insert greeting failed: greeting_id=%s err=%v", record.GreetingID, err)
		return nil, fmt.Errorf("insert greeting: %w", err)
	}
	r.log.WithContext(ctx).Debugf("greeting saved: greeting_id=%s", record.GreetingID)
	return record, nil
}

// FindByID 按主键查询问候记录。
//
// 错误处理：
//   - pgx.ErrNoRows → services.ErrGreetingNotFound
//   - 其他数据库错误包装后返回
func (r *GreetingRepository) FindByID(ctx context.Context, greetingID uuid.UUID) (*po.Greeting, error) {
	var record po.Greeting
	err := r.db.QueryRow(ctx, sqlFindGreetingByID, greetingID).
		Scan(&record.GreetingID, &record.Suffix, &record.Message, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, services.ErrGreetingNotFound
		}
		return nil, fmt.Errorf("find greeting by id: %w", err)
	}
	return &record, nil
}

// ListBySuffix 按后缀精确匹配查询，按创建时间倒序。
func (r *GreetingRepository) ListBySuffix(ctx context.Context, suffix string, limit int) ([]*po.Greeting, error) {
	rows, err := r.db.Query(ctx, sqlListGreetingsBySuffix, suffix, limit)
	if err != nil {
		return nil, fmt.Errorf("list greetings by suffix: %w", err)
	}
	defer rows.Close()
	return scanGreetings(rows)
}

// ListAll 查询最近的问候记录，按创建时间倒序。
func (r *GreetingRepository) ListAll(ctx context.Context, limit int) ([]*po.Greeting, error) {
	rows, err := r.db.Query(ctx, sqlListGreetings, limit)
	if err != nil {
		return nil, fmt.Errorf("list greetings: %w", err)
	}
	defer rows.Close()
	return scanGreetings(rows)
}

// DeleteOlderThan 删除早于 cutoff 的记录，单次最多删除 limit 条。
func (r *GreetingRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	tag, err := r.db.Exec(ctx, sqlDeleteGreetingsOlderThan, cutoff, limit)
	if err != nil {
		return 0, fmt.Errorf("delete greetings older than %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return tag.RowsAffected(), nil
}

func scanGreetings(rows pgx.Rows) ([]*po.Greeting, error) {
	var records []*po.Greeting
	for rows.Next() {
		var record po.Greeting
		if err := rows.Scan(&record.GreetingID, &record.Suffix, &record.Message, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan greeting row: %w", err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate greeting rows: %w", err)
	}
	return records, nil
}
