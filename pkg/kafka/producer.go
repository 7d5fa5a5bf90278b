package kafka

import (
	"context"
	"maps"
	"slices"

	kafkago "github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafkago.Writer
}

// NewProducer creates a producer for topic. Messages with the same key land on the same partition.
func NewProducer(brokers []string, topic string, createTopic, noAck bool) *Producer {
	acks := kafkago.RequireAll
	if noAck {
		acks = kafkago.RequireNone
	}
	return &Producer{
		writer: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkago.Hash{},
			RequiredAcks:           acks,
			AllowAutoTopicCreation: createTopic,
		},
	}
}

// WriteMessage writes a single keyed message with string headers to Kafka
func (p *Producer) WriteMessage(ctx context.Context, key, value []byte, headers map[string]string) error {
	msg := kafkago.Message{
		Key:   key,
		Value: value,
	}
	for _, k := range slices.Sorted(maps.Keys(headers)) {
		msg.Headers = append(msg.Headers, kafkago.Header{Key: k, Value: []byte(headers[k])})
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close closes the underlying writer
func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
