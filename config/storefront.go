package config

// StorefrontConfig 店面 REST 创建接口（products 子命令的持久化目标）。
// BaseURL 未配置时 products 子命令直接失败，这是启动期配置错误，
// 不属于批次内可容忍的逐项失败。
type StorefrontConfig struct {
	BaseURL string `mapstructure:"baseUrl" json:"baseUrl" yaml:"baseUrl"` // 例如 http://demo.local/wp-json/wc/v3
	// Key/Secret 作为 HTTP Basic Auth 凭证发送（WooCommerce 风格的 consumer key/secret）。
	Key    string `mapstructure:"key" json:"key" yaml:"key"`
	Secret string `mapstructure:"secret" json:"secret" yaml:"secret"`
	// TimeoutSeconds 单次创建请求的超时（秒），0 表示使用默认 30 秒。
	TimeoutSeconds int `mapstructure:"timeoutSeconds" json:"timeoutSeconds" yaml:"timeoutSeconds"`
}
