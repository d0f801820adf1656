package config

import "github.com/Xushengqwer/go-common/config"

// FakerConfig 是 content-faker 的聚合配置，通过 core.LoadConfig 从 YAML 加载。
type FakerConfig struct {
	ZapConfig         config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig     config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	TracerConfig      config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig       MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig       RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig       KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig         COSConfig            `mapstructure:"demoMediaCosConfig" json:"demoMediaCosConfig" yaml:"demoMediaCosConfig"`
	StorefrontConfig  StorefrontConfig     `mapstructure:"storefrontConfig" json:"storefrontConfig" yaml:"storefrontConfig"`
	ImageSourceConfig ImageSourceConfig    `mapstructure:"imageSourceConfig" json:"imageSourceConfig" yaml:"imageSourceConfig"`
	GenerateConfig    GenerateConfig       `mapstructure:"generateConfig" json:"generateConfig" yaml:"generateConfig"`
	MockStoreConfig   MockStoreConfig      `mapstructure:"mockStoreConfig" json:"mockStoreConfig" yaml:"mockStoreConfig"`
}
