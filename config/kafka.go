package config

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics  Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
}

type Topics struct {
	SeedBatchCompleted string `mapstructure:"seedBatchCompleted" yaml:"seedBatchCompleted"` // 单个批次填充完成事件
	SeedRunCompleted   string `mapstructure:"seedRunCompleted" yaml:"seedRunCompleted"`     // 整次运行完成事件
}
