package config

// GenerateConfig 生成行为相关的配置。
type GenerateConfig struct {
	// Seed 随机源种子。0 表示每次运行随机；固定非零值可完整复现一次运行的
	// 全部字段取值（测试与排障用）。命令行 -seed 优先于此配置。
	Seed int64 `mapstructure:"seed" json:"seed" yaml:"seed"`

	// CustomFieldPrefix SEO 变体收集帖子自定义字段时匹配的键前缀。
	CustomFieldPrefix string `mapstructure:"customFieldPrefix" json:"customFieldPrefix" yaml:"customFieldPrefix"`

	// RefreshCron 可选的 cron 表达式。配置后进程在首轮填充结束后常驻，
	// 按计划重复执行一次小规模 content 填充，保持演示站内容新鲜；
	// 收到 SIGINT/SIGTERM 后优雅退出。留空则填充一次即退出。
	RefreshCron string `mapstructure:"refreshCron" json:"refreshCron" yaml:"refreshCron"`
}

// MockStoreConfig 内置 mock 店面服务（cmd/mockstore）的监听配置。
type MockStoreConfig struct {
	Port string `mapstructure:"port" json:"port" yaml:"port"` // 默认 8090
}
