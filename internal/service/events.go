package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// EventPublisher emits domain events to Kafka. A nil publisher (or a nil
// writer) drops events, which is how tests run.
type EventPublisher struct {
	writer *kafka.Writer
}

func NewEventPublisher(writer *kafka.Writer) *EventPublisher {
	return &EventPublisher{writer: writer}
}

func (p *EventPublisher) Publish(ctx context.Context, kind, id string, payload interface{}) error {
	if p == nil || p.writer == nil {
		return nil
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%s-%s", kind, id)),
		Value: value,
	}

	err = p.writer.WriteMessages(ctx, msg)
	if err != nil {
		logger.Error().Err(err).Msgf("Error publishing %s event for %s", kind, id)
		return err
	}

	return nil
}
