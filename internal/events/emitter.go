package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

// Emitter delivers one event to wherever notifications are consumed.
type Emitter interface {
	Emit(ctx context.Context, ev Event) error
	Close() error
}

// KafkaEmitter publishes events as JSON keyed by tenant, so one
// tenant's events stay ordered within a partition.
type KafkaEmitter struct {
	writer *kafka.Writer
}

func NewKafkaEmitter(brokers []string, topic string) *KafkaEmitter {
	return &KafkaEmitter{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (e *KafkaEmitter) Emit(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return e.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.TenantID.String()),
		Value: payload,
	})
}

func (e *KafkaEmitter) Close() error {
	return e.writer.Close()
}

// NopEmitter drops everything; used when no brokers are configured.
type NopEmitter struct{}

func (NopEmitter) Emit(context.Context, Event) error { return nil }
func (NopEmitter) Close() error                      { return nil }
