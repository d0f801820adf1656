// Package redis 记录每次填充运行产生的 ID 池。
// 运行记录只是辅助能力：它让后续排查（或人工清理演示数据）能按运行
// 批次定位到具体实体 ID。Redis 不可用时整个填充流程照常进行。
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_faker/constant"
)

// 运行记录保留 30 天，演示环境通常活不过这个时间
const seedRunTTL = 30 * 24 * time.Hour

// SeedRecordRepo 运行记录仓库。
type SeedRecordRepo struct {
	rdb    *redis.Client
	logger *core.ZapLogger
}

// NewSeedRecordRepo 创建运行记录仓库。
func NewSeedRecordRepo(rdb *redis.Client, logger *core.ZapLogger) *SeedRecordRepo {
	return &SeedRecordRepo{rdb: rdb, logger: logger}
}

// runEntityKey 拼接某次运行下某类实体的 ID 列表键，
// 形如 faker:run:{runID}:{entity}。
func runEntityKey(runID, entity string) string {
	return fmt.Sprintf("%s%s:%s", constant.SeedRunKeyPrefix, runID, entity)
}

// RecordIDs 把一批实体 ID 追加到运行记录里，并把 runID 注册进运行集合。
// 空批次直接返回，不产生空键。
func (r *SeedRecordRepo) RecordIDs(ctx context.Context, runID, entity string, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}

	members := make([]interface{}, len(ids))
	for i, id := range ids {
		members[i] = strconv.FormatUint(id, 10)
	}

	key := runEntityKey(runID, entity)
	pipe := r.rdb.Pipeline()
	pipe.SAdd(ctx, constant.SeedRunSetKey, runID)
	pipe.RPush(ctx, key, members...)
	pipe.Expire(ctx, key, seedRunTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Warn("写入运行记录失败",
			zap.String("runID", runID), zap.String("entity", entity), zap.Error(err))
		return fmt.Errorf("写入运行记录失败 (run=%s, entity=%s): %w", runID, entity, err)
	}
	return nil
}

// ListRuns 列出已记录的运行 ID。
func (r *SeedRecordRepo) ListRuns(ctx context.Context) ([]string, error) {
	runs, err := r.rdb.SMembers(ctx, constant.SeedRunSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("查询运行集合失败: %w", err)
	}
	return runs, nil
}

// RunEntityIDs 取某次运行下某类实体的全部 ID。
func (r *SeedRecordRepo) RunEntityIDs(ctx context.Context, runID, entity string) ([]uint64, error) {
	values, err := r.rdb.LRange(ctx, runEntityKey(runID, entity), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("查询运行 %s 的 %s 记录失败: %w", runID, entity, err)
	}

	ids := make([]uint64, 0, len(values))
	for _, value := range values {
		id, parseErr := strconv.ParseUint(value, 10, 64)
		if parseErr != nil {
			r.logger.Warn("运行记录中存在非法 ID，已跳过",
				zap.String("runID", runID), zap.String("entity", entity), zap.String("value", value))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
