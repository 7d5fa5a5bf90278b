package pkg

import (
	"context"
	"fmt"
	"net"
	"slices"
	"strconv"

	"github.com/lolocompany/wave-splitter/pkg/kafka"
)

// BrokerOutput is one broker and whether it accepts connections
type BrokerOutput struct {
	ID         int    `json:"id,omitempty" yaml:"id,omitempty"`
	Address    string `json:"address" yaml:"address"`
	Reachable  bool   `json:"reachable" yaml:"reachable"`
	Configured bool   `json:"configured" yaml:"configured"`
}

// ListBrokers checks every configured address and every broker the cluster advertises.
// It fails with kafka.ErrUnreachable when none of the configured addresses answer.
func ListBrokers(ctx context.Context, brokers []string) ([]BrokerOutput, error) {
	conn, err := kafka.ConnectToAnyBroker(ctx, brokers)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	advertised, err := conn.Brokers()
	if err != nil {
		return nil, fmt.Errorf("failed to read broker metadata: %w", err)
	}
	slices.SortFunc(advertised, func(a, b kafka.Broker) int { return a.ID - b.ID })

	result := make([]BrokerOutput, 0, len(brokers)+len(advertised))
	seen := make(map[string]bool)
	for _, address := range brokers {
		if seen[address] {
			continue
		}
		seen[address] = true
		result = append(result, BrokerOutput{
			Address:    address,
			Reachable:  kafka.IsBrokerReachable(ctx, address),
			Configured: true,
		})
	}
	for _, b := range advertised {
		address := net.JoinHostPort(b.Host, strconv.Itoa(b.Port))
		if seen[address] {
			for i := range result {
				if result[i].Address == address {
					result[i].ID = b.ID
				}
			}
			continue
		}
		seen[address] = true
		result = append(result, BrokerOutput{
			ID:        b.ID,
			Address:   address,
			Reachable: kafka.IsBrokerReachable(ctx, address),
		})
	}
	return result, nil
}
