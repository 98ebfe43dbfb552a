package kafka

import (
	"context"
	"encoding/json"

	"github.com/saiyeshwin/housebook-backend/internal/events"
	"github.com/segmentio/kafka-go"
)

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(broker, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) Publish(event events.EntryMutated) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.EntryID),
		Value: data,
	})
}

func (p *Publisher) Close() error { return p.writer.Close() }

var _ events.Publisher = (*Publisher)(nil)
