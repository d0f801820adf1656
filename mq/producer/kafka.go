package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_faker/config"
)

// SeedBatchCompletedEvent 一个实体批次落库完成后发出的事件。
// 下游（搜索索引、缓存预热等）可按实体类型增量拉取演示数据。
type SeedBatchCompletedEvent struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"runId"`
	Entity    string    `json:"entity"`
	Count     int       `json:"count"`
	IDs       []uint64  `json:"ids"`
}

// SeedRunCompletedEvent 整次填充运行结束时发出的汇总事件。
type SeedRunCompletedEvent struct {
	EventID   string         `json:"eventId"`
	Timestamp time.Time      `json:"timestamp"`
	RunID     string         `json:"runId"`
	Counts    map[string]int `json:"counts"`
}

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// Close 关闭底层 writer。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Successfully sent Kafka message", zap.String("topic", topic))
	}
	return err
}

// SendSeedBatchCompletedEvent 发送批次完成事件到 Kafka
// - 意图: 通知下游某类演示实体已就绪，附带本批次全部 ID
// - 输入: ctx 上下文, runID 运行标识, entity 实体类型, ids 本批次创建成功的 ID
// - 输出: error 错误信息
func (p *KafkaProducer) SendSeedBatchCompletedEvent(ctx context.Context, runID, entity string, ids []uint64) error {
	event := SeedBatchCompletedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		RunID:     runID,
		Entity:    entity,
		Count:     len(ids),
		IDs:       ids,
	}
	return p.SendEvent(ctx, p.topics.SeedBatchCompleted, event)
}

// SendSeedRunCompletedEvent 发送整次运行完成事件到 Kafka
// - 意图: 汇总一次填充运行各实体的创建数量
// - 输入: ctx 上下文, runID 运行标识, counts 实体类型到创建数量的映射
// - 输出: error 错误信息
func (p *KafkaProducer) SendSeedRunCompletedEvent(ctx context.Context, runID string, counts map[string]int) error {
	event := SeedRunCompletedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		RunID:     runID,
		Counts:    counts,
	}
	return p.SendEvent(ctx, p.topics.SeedRunCompleted, event)
}
