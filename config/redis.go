package config

// RedisConfig Redis 连接配置。
// 填充工具用 Redis 记录每次运行生成的 ID 池（runs 子命令的数据来源），
// 未配置 Address 时相关功能自动禁用。
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`    // host:port
	Password string `mapstructure:"password" json:"password" yaml:"password"` // 可为空
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`                   // 逻辑库编号
	PoolSize int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"` // 连接池大小，0 使用客户端默认值
}
