package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBusPublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(DuelResolved, func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	err := bus.Publish(context.Background(), NewDuelResolvedEvent("alice", "bob", 1000))
	require.NoError(t, err)

	require.Len(t, received, 1)
	payload, ok := received[0].Payload.(DuelResolvedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "alice", payload.Winner)
	assert.Equal(t, "bob", payload.Loser)
	assert.Equal(t, 1000, payload.TotalPot)
	assert.Equal(t, EventSchemaVersion, received[0].Version)
}

func TestMemoryBusNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), NewDonationEvent("alice", 5.0))
	assert.NoError(t, err, "publishing with no subscribers should not fail")
}

func TestMemoryBusHandlerErrorAggregation(t *testing.T) {
	bus := NewMemoryBus()

	bus.Subscribe(SubscriptionReceived, func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})
	calls := 0
	bus.Subscribe(SubscriptionReceived, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewSubscriptionEvent("alice", 1, 1, ""))
	assert.Error(t, err, "handler error should surface to publisher")
	assert.Equal(t, 1, calls, "later handlers still run after an earlier failure")
}

func TestMemoryBusConcurrentSubscribePublish(t *testing.T) {
	bus := NewMemoryBus()

	var mu sync.Mutex
	count := 0
	bus.Subscribe(DuelChallenged, func(ctx context.Context, e Event) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = bus.Publish(context.Background(), NewDuelChallengedEvent("alice", "bob", 300))
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, count)
}
