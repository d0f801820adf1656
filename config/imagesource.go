package config

// ImageSourceConfig 按关键词取图的外部图片服务。
// 请求形如 GET {baseUrl}/{width}/{height}/{keyword}，返回图片二进制。
// 这是整个工具唯一的外部网络依赖，也是运行期失败的主要来源。
type ImageSourceConfig struct {
	BaseURL string `mapstructure:"baseUrl" json:"baseUrl" yaml:"baseUrl"` // 默认 https://loremflickr.com
	// TimeoutSeconds 单次下载的超时（秒），0 表示使用默认 30 秒。
	TimeoutSeconds int `mapstructure:"timeoutSeconds" json:"timeoutSeconds" yaml:"timeoutSeconds"`
}
