package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RefreshFunc 执行一轮完整填充。每次触发使用新的 runID。
type RefreshFunc func(ctx context.Context) error

// RefreshSeedTask 按 cron 表达式周期性重新填充演示数据。
// 用于长期运行的演示站点：旧数据逐渐过时，定期补一批新的。
type RefreshSeedTask struct {
	refresh RefreshFunc
	cron    *cron.Cron
	logger  *core.ZapLogger
}

// NewRefreshSeedTask 初始化并启动周期填充任务。
// - schedule: cron 表达式（分钟级精度），由配置项 generateConfig.refreshCron 提供。
// - refresh: 单轮填充逻辑。
func NewRefreshSeedTask(schedule string, refresh RefreshFunc, logger *core.ZapLogger) *RefreshSeedTask {
	task := &RefreshSeedTask{
		refresh: refresh,
		cron:    cron.New(),
		logger:  logger,
	}
	task.startCronJob(schedule)
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *RefreshSeedTask) startCronJob(schedule string) {
	t.logger.Info("准备启动周期填充任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("周期填充开始执行...")
		startTime := time.Now()
		// 单轮填充设置 30 分钟超时，大数量配置下载图片可能较慢
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		if err := t.refresh(ctx); err != nil {
			t.logger.Error("周期填充执行失败", zap.Error(err))
		} else {
			t.logger.Info("周期填充执行完毕", zap.Duration("duration", time.Since(startTime)))
		}
	})
	if err != nil {
		t.logger.Fatal("添加周期填充 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("周期填充任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// Stop 优雅地停止 cron 调度器，返回的 context 在执行中的任务结束后完成。
func (t *RefreshSeedTask) Stop() context.Context {
	t.logger.Info("正在停止周期填充任务...")
	return t.cron.Stop()
}
