package generator

import (
	"github.com/Xushengqwer/go-common/core"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// consoleObserver 把批次进度渲染成终端进度条，失败条目记警告日志。
type consoleObserver struct {
	logger *core.ZapLogger
	bar    *progressbar.ProgressBar
}

// NewConsoleObserver 创建面向命令行的批次观察者。
func NewConsoleObserver(logger *core.ZapLogger) BatchObserver {
	return &consoleObserver{logger: logger}
}

func (o *consoleObserver) BatchStarted(name string, total int) {
	o.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("生成 "+name),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (o *consoleObserver) ItemSucceeded(name string, index int, id uint64) {
	_ = o.bar.Add(1)
}

func (o *consoleObserver) ItemFailed(name string, index int, err error) {
	_ = o.bar.Add(1)
	o.logger.Warn("条目创建失败，已跳过",
		zap.String("batch", name), zap.Int("index", index), zap.Error(err))
}

func (o *consoleObserver) BatchFinished(name string, succeeded, total int) {
	_ = o.bar.Finish()
	if succeeded < total {
		o.logger.Warn("批次存在失败条目",
			zap.String("batch", name), zap.Int("succeeded", succeeded), zap.Int("total", total))
		return
	}
	o.logger.Info("批次完成", zap.String("batch", name), zap.Int("count", succeeded))
}
