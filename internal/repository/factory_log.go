package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"ecosync/internal/models"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of kafka.Writer used by KafkaFactoryLog.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// factoryLogRecord is the message value published per generated report.
type factoryLogRecord struct {
	ID           string              `json:"id"`
	WorkerID     string              `json:"workerId"`
	SafetyStatus models.SafetyStatus `json:"safetyStatus"`
	GeneratedAt  time.Time           `json:"generatedAt"`
	Payload      json.RawMessage     `json:"payload,omitempty"`
	RawPayload   string              `json:"rawPayload,omitempty"` // set when the payload is not valid JSON
}

var errNoReport = errors.New("history entry has no report")

// KafkaFactoryLog publishes generated reports to a Kafka topic.
type KafkaFactoryLog struct {
	writer messageWriter
}

// NewKafkaFactoryLog builds a publisher writing to topic on the given brokers.
func NewKafkaFactoryLog(brokers []string, topic string) (*KafkaFactoryLog, error) {
	if len(brokers) == 0 {
		return nil, errors.New("factory log: no brokers configured")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errors.New("factory log: topic is empty")
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &KafkaFactoryLog{writer: w}, nil
}

func newKafkaFactoryLogWithWriter(w messageWriter) *KafkaFactoryLog {
	return &KafkaFactoryLog{writer: w}
}

// Publish writes e keyed by its id.
func (l *KafkaFactoryLog) Publish(ctx context.Context, e models.HistoryEntry) error {
	value, err := encodeFactoryLogRecord(e)
	if err != nil {
		return err
	}
	if err := l.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.ID),
		Value: value,
		Time:  e.Report.GeneratedAt,
	}); err != nil {
		return fmt.Errorf("publish factory log entry %s: %w", e.ID, err)
	}
	return nil
}

func (l *KafkaFactoryLog) Close() error {
	return l.writer.Close()
}

func encodeFactoryLogRecord(e models.HistoryEntry) ([]byte, error) {
	if e.Report == nil {
		return nil, errNoReport
	}
	rec := factoryLogRecord{
		ID:           e.ID,
		WorkerID:     e.WorkerID,
		SafetyStatus: e.Report.SafetyStatus,
		GeneratedAt:  e.Report.GeneratedAt.UTC(),
	}
	if json.Valid([]byte(e.Report.RawJSON)) {
		rec.Payload = json.RawMessage(e.Report.RawJSON)
	} else {
		rec.RawPayload = e.Report.RawJSON
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode factory log entry %s: %w", e.ID, err)
	}
	return b, nil
}

// NopFactoryLog discards every entry.
type NopFactoryLog struct{}

func (NopFactoryLog) Publish(context.Context, models.HistoryEntry) error { return nil }
func (NopFactoryLog) Close() error                                       { return nil }
