package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectToAnyBroker(t *testing.T) {
	_, err := ConnectToAnyBroker(context.Background(), nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnreachable)

	_, err = ConnectToAnyBroker(context.Background(), []string{"localhost:19999", "localhost:19998"})
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Contains(t, err.Error(), "localhost:19998")
}

func TestCheckTopic_Unreachable(t *testing.T) {
	err := CheckTopic(context.Background(), []string{"localhost:19999"}, "segments", true)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestIsBrokerReachable(t *testing.T) {
	assert.False(t, IsBrokerReachable(context.Background(), "localhost:19999"))
}
