package generator

import (
	"context"
	"errors"
	"testing"
)

// recordingObserver 记录批次回调，测试专用。
type recordingObserver struct {
	startedName  string
	startedTotal int
	succeeded    []int
	failed       []int
	finSucceeded int
	finTotal     int
}

func (o *recordingObserver) BatchStarted(name string, total int) {
	o.startedName = name
	o.startedTotal = total
}
func (o *recordingObserver) ItemSucceeded(_ string, index int, _ uint64) {
	o.succeeded = append(o.succeeded, index)
}
func (o *recordingObserver) ItemFailed(_ string, index int, _ error) {
	o.failed = append(o.failed, index)
}
func (o *recordingObserver) BatchFinished(_ string, succeeded, total int) {
	o.finSucceeded = succeeded
	o.finTotal = total
}

func TestRunBatchSkipsFailedItems(t *testing.T) {
	obs := &recordingObserver{}
	var createdLens []int

	ids := RunBatch(context.Background(), "词条", 5, obs,
		func(_ context.Context, index int, created []uint64) (uint64, error) {
			createdLens = append(createdLens, len(created))
			if index == 2 {
				return 0, errors.New("模拟失败")
			}
			return uint64(100 + index), nil
		})

	if len(ids) != 4 {
		t.Fatalf("期望 4 条成功，得到 %d", len(ids))
	}
	want := []uint64{100, 101, 103, 104}
	for i, id := range ids {
		if id != want[i] {
			t.Fatalf("结果顺序错误: got %v want %v", ids, want)
		}
	}
	if len(obs.failed) != 1 || obs.failed[0] != 2 {
		t.Fatalf("失败回调记录错误: %v", obs.failed)
	}
	if obs.finSucceeded != 4 || obs.finTotal != 5 {
		t.Fatalf("收尾回调记录错误: %d/%d", obs.finSucceeded, obs.finTotal)
	}
	// created 池随成功条目增长，失败条目不计入
	wantLens := []int{0, 1, 2, 2, 3}
	for i, n := range createdLens {
		if n != wantLens[i] {
			t.Fatalf("created 池长度序列错误: got %v want %v", createdLens, wantLens)
		}
	}
}

func TestRunBatchZeroAndNegativeCount(t *testing.T) {
	obs := &recordingObserver{}
	ids := RunBatch(context.Background(), "空批次", 0, obs,
		func(context.Context, int, []uint64) (uint64, error) {
			t.Fatal("不应被调用")
			return 0, nil
		})
	if len(ids) != 0 || obs.startedTotal != 0 {
		t.Fatalf("空批次结果错误: %v", ids)
	}

	ids = RunBatch(context.Background(), "负数", -3, obs,
		func(context.Context, int, []uint64) (uint64, error) {
			t.Fatal("不应被调用")
			return 0, nil
		})
	if len(ids) != 0 {
		t.Fatalf("负数批次结果错误: %v", ids)
	}
}

func TestRunBatchStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	obs := &recordingObserver{}

	ids := RunBatch(ctx, "取消", 10, obs,
		func(_ context.Context, index int, _ []uint64) (uint64, error) {
			if index == 2 {
				cancel()
			}
			return uint64(index), nil
		})

	if len(ids) != 3 {
		t.Fatalf("取消后应保留已完成的 3 条，得到 %d", len(ids))
	}
}
