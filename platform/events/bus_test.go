package events

import (
	"context"
	"errors"
	"testing"

	"storefront/platform/logger"
)

type pingEvent struct {
	BaseEvent
}

func (pingEvent) EventName() string { return "test.ping" }

func TestPublishSyncJoinsHandlerErrors(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	calls := 0
	bus.Subscribe("test.ping", HandlerFunc(func(context.Context, Event) error {
		calls++
		return errors.New("first")
	}))
	bus.Subscribe("test.ping", HandlerFunc(func(context.Context, Event) error {
		calls++
		return nil
	}))

	err := bus.PublishSync(context.Background(), pingEvent{BaseEvent: NewBaseEvent()})
	if err == nil {
		t.Fatal("expected joined error")
	}
	if calls != 2 {
		t.Fatalf("expected both handlers to run, got %d", calls)
	}
}

func TestNewBaseEventStampsDistinctOccurrences(t *testing.T) {
	first, second := NewBaseEvent(), NewBaseEvent()

	if first.EventID() == "" || first.EventID() == second.EventID() {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", first.EventID(), second.EventID())
	}
	if first.OccurredAt().IsZero() {
		t.Fatal("expected a timestamp")
	}
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	if err := bus.PublishSync(context.Background(), pingEvent{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
