package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// ErrUnreachable is returned when none of the configured brokers accepts a connection
var ErrUnreachable = errors.New("no reachable kafka broker")

// Conn represents a connection to a Kafka broker
type Conn struct {
	conn *kafkago.Conn
}

// ConnectToAnyBroker connects to the first available broker from the given list
func ConnectToAnyBroker(ctx context.Context, brokers []string) (*Conn, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker address is required")
	}

	var conn *kafkago.Conn
	var err error
	for _, broker := range brokers {
		conn, err = kafkago.DialContext(ctx, "tcp", broker)
		if err == nil {
			return &Conn{conn: conn}, nil
		}
	}
	return nil, fmt.Errorf("%w: failed to connect to any broker (tried: %v): %w", ErrUnreachable, brokers, err)
}

// Close closes the connection
func (c *Conn) Close() error {
	return c.conn.Close()
}

// Broker is a broker advertised in cluster metadata
type Broker struct {
	ID   int
	Host string
	Port int
}

// Brokers returns the brokers advertised by the cluster
func (c *Conn) Brokers() ([]Broker, error) {
	brokers, err := c.conn.Brokers()
	if err != nil {
		return nil, err
	}
	result := make([]Broker, 0, len(brokers))
	for _, b := range brokers {
		result = append(result, Broker{ID: b.ID, Host: b.Host, Port: b.Port})
	}
	return result, nil
}

// TopicExists reports whether the cluster knows the topic
func (c *Conn) TopicExists(topic string) (bool, error) {
	partitions, err := c.conn.ReadPartitions(topic)
	if err != nil {
		var kerr kafkago.Error
		if errors.As(err, &kerr) && kerr == kafkago.UnknownTopicOrPartition {
			return false, nil
		}
		return false, fmt.Errorf("failed to read partitions for topic %q: %w", topic, err)
	}
	return len(partitions) > 0, nil
}

// CheckTopic connects to the cluster and verifies the topic exists, unless it will be created on demand
func CheckTopic(ctx context.Context, brokers []string, topic string, createTopic bool) error {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := ConnectToAnyBroker(checkCtx, brokers)
	if err != nil {
		return err
	}
	defer conn.Close()

	if createTopic {
		return nil
	}
	exists, err := conn.TopicExists(topic)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("topic %q does not exist (use --create-topic to create it)", topic)
	}
	return nil
}

// IsBrokerReachable checks if a broker is reachable by attempting to connect to it
func IsBrokerReachable(ctx context.Context, address string) bool {
	// Create a context with a short timeout for reachability check
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	conn, err := kafkago.DialContext(checkCtx, "tcp", address)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
