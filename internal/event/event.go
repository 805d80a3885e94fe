package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Common event types
const (
	// Duel event types
	DuelChallenged Type = "duel.challenged"
	DuelResolved   Type = "duel.resolved"
	DuelExpired    Type = "duel.expired"
	DuelDeclined   Type = "duel.declined"
	DuelCancelled  Type = "duel.cancelled"

	// Subscription event types
	SubscriptionReceived Type = "subscription.received"

	// Donation event types
	DonationReceived Type = "donation.received"
)

// Typed event payloads for type safety

// DuelChallengedPayloadV1 is the typed payload for duel challenge events
type DuelChallengedPayloadV1 struct {
	Requestor string `json:"requestor"`
	Target    string `json:"target"`
	Stake     int    `json:"stake"`
	Timestamp int64  `json:"timestamp"`
}

// DuelResolvedPayloadV1 is the typed payload for duel resolution events
type DuelResolvedPayloadV1 struct {
	Winner    string `json:"winner"`
	Loser     string `json:"loser"`
	TotalPot  int    `json:"total_pot"`
	Timestamp int64  `json:"timestamp"`
}

// SubscriptionPayloadV1 is the typed payload for subscription events
type SubscriptionPayloadV1 struct {
	Username  string `json:"username"`
	Tier      int    `json:"tier"`
	Months    int    `json:"months"`
	GiftedBy  string `json:"gifted_by,omitempty"`
	MassGifts int    `json:"mass_gifts,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// DonationPayloadV1 is the typed payload for donation events
type DonationPayloadV1 struct {
	Username  string  `json:"username"`
	AmountUSD float64 `json:"amount_usd"`
	Timestamp int64   `json:"timestamp"`
}

// Type-safe event constructors

// NewDuelChallengedEvent creates a new duel challenged event
func NewDuelChallengedEvent(requestor, target string, stake int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DuelChallenged,
		Payload: DuelChallengedPayloadV1{
			Requestor: requestor,
			Target:    target,
			Stake:     stake,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewDuelLifecycleEvent creates an expiry, decline, or cancel event for a
// challenge that ended without resolution
func NewDuelLifecycleEvent(eventType Type, requestor, target string, stake int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: DuelChallengedPayloadV1{
			Requestor: requestor,
			Target:    target,
			Stake:     stake,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewDuelResolvedEvent creates a new duel resolved event
func NewDuelResolvedEvent(winner, loser string, totalPot int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DuelResolved,
		Payload: DuelResolvedPayloadV1{
			Winner:    winner,
			Loser:     loser,
			TotalPot:  totalPot,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSubscriptionEvent creates a new subscription event
func NewSubscriptionEvent(username string, tier, months int, giftedBy string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SubscriptionReceived,
		Payload: SubscriptionPayloadV1{
			Username:  username,
			Tier:      tier,
			Months:    months,
			GiftedBy:  giftedBy,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewDonationEvent creates a new donation event
func NewDonationEvent(username string, amountUSD float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DonationReceived,
		Payload: DonationPayloadV1{
			Username:  username,
			AmountUSD: amountUSD,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
