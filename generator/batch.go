// Package generator 负责把假数据源的原始素材组装成完整的内容实体，
// 并按批次执行创建。单条失败只计为警告，批次继续推进。
package generator

import (
	"context"
)

// BatchObserver 观察批次执行进度。
// 实现方不应在回调里做重活，回调发生在批次循环内。
type BatchObserver interface {
	// BatchStarted 批次开始，total 为计划创建的条数。
	BatchStarted(name string, total int)
	// ItemSucceeded 第 index 条（从 0 计）创建成功。
	ItemSucceeded(name string, index int, id uint64)
	// ItemFailed 第 index 条创建失败，批次不会中断。
	ItemFailed(name string, index int, err error)
	// BatchFinished 批次结束，succeeded 为实际创建成功的条数。
	BatchFinished(name string, succeeded, total int)
}

// ItemFunc 创建批次中的第 index 条实体。
// created 是本批次此前已创建成功的 ID，按创建顺序排列，
// 需要引用同批次早期实体（页面父子、词条父子）的生成器靠它自引用。
type ItemFunc func(ctx context.Context, index int, created []uint64) (uint64, error)

// RunBatch 顺序执行 count 次创建。失败的条目跳过，不影响后续条目，
// 返回创建成功的实体 ID 列表。ctx 取消时提前返回已完成的部分。
func RunBatch(ctx context.Context, name string, count int, observer BatchObserver, fn ItemFunc) []uint64 {
	if count < 0 {
		count = 0
	}
	observer.BatchStarted(name, count)

	created := make([]uint64, 0, count)
	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			break
		}
		id, err := fn(ctx, i, created)
		if err != nil {
			observer.ItemFailed(name, i, err)
			continue
		}
		created = append(created, id)
		observer.ItemSucceeded(name, i, id)
	}

	observer.BatchFinished(name, len(created), count)
	return created
}
