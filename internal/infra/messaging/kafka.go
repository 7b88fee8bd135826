package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	kafka "github.com/segmentio/kafka-go"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/infra/config"
)

// messageWriter は Kafka Writer の抽象インターフェース。
// テスト時にモックへ差し替え可能にする。
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...writerMessage) error
	Close() error
}

// writerMessage は Kafka に送信するメッセージを表す。
type writerMessage struct {
	Topic string
	Key   []byte
	Value []byte
}

// kafkaGoWriter は kafka-go の Writer をラップする本番実装。
type kafkaGoWriter struct {
	w *kafka.Writer
}

func (k *kafkaGoWriter) WriteMessages(ctx context.Context, msgs ...writerMessage) error {
	kafkaMsgs := make([]kafka.Message, len(msgs))
	for i, m := range msgs {
		kafkaMsgs[i] = kafka.Message{
			Topic: m.Topic,
			Key:   m.Key,
			Value: m.Value,
		}
	}
	return k.w.WriteMessages(ctx, kafkaMsgs...)
}

func (k *kafkaGoWriter) Close() error {
	return k.w.Close()
}

// KafkaProducer はオペレーション記録イベントの Kafka プロデューサー。
type KafkaProducer struct {
	writer messageWriter
	topic  string
}

// NewKafkaProducer は新しい KafkaProducer を作成する。
func NewKafkaProducer(cfg config.KafkaConfig) *KafkaProducer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},    // 従業員 ID による分散
		RequiredAcks: kafka.RequireAll, // acks=all
		Async:        false,
	}
	return &KafkaProducer{
		writer: &kafkaGoWriter{w: w},
		topic:  cfg.Topics.Operations,
	}
}

// operationEvent は配信される JSON ペイロード。date は ISO 形式に正規化する。
type operationEvent struct {
	ID              int64   `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	Date            string  `json:"date"`
	OriginalHours   float64 `json:"original_hours"`
	UpdatedHours    float64 `json:"updated_hours"`
	Status          string  `json:"status"`
	DateParseFailed bool    `json:"date_parse_failed"`
}

// Publish はオペレーションログの記録をイベントとして配信する。
func (p *KafkaProducer) Publish(ctx context.Context, entry *model.OperationLog) error {
	event := operationEvent{
		ID:              entry.ID,
		EmployeeID:      entry.EmployeeID,
		EmployeeName:    entry.EmployeeName,
		Date:            entry.Date.Format("2006-01-02"),
		OriginalHours:   entry.OriginalHours,
		UpdatedHours:    entry.UpdatedHours,
		Status:          entry.Status,
		DateParseFailed: entry.DateParseFailed,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize operation event: %w", err)
	}

	msg := writerMessage{
		Topic: p.topic,
		Key:   []byte(entry.EmployeeID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish operation event: %w", err)
	}

	return nil
}

// Close は Kafka プロデューサーを閉じる。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
