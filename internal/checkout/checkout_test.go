package checkout

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/events"
	"storefront/internal/scheduler"
	"storefront/platform/apperr"
	"storefront/platform/logger"
)

type recordingQueue struct {
	payloads []scheduler.CheckoutIntentPayload
	err      error
}

func (q *recordingQueue) EnqueueCheckoutIntent(_ context.Context, payload scheduler.CheckoutIntentPayload) error {
	if q.err != nil {
		return q.err
	}
	q.payloads = append(q.payloads, payload)
	return nil
}

var sampleRequest = Request{
	SessionID: "s-1",
	Email:     " vedovelli@gmail.com ",
	Items:     []Item{{ProductID: "p1", Title: "Beautiful Watch", Quantity: 2}},
}

func TestRequestCheckoutPublishesOneEvent(t *testing.T) {
	bus := events.NewInMemoryBus(logger.Discard())
	var received []events.CheckoutRequested
	bus.Subscribe("checkout.requested", events.HandlerFunc(func(_ context.Context, e events.Event) error {
		received = append(received, e.(events.CheckoutRequested))
		return nil
	}))

	if err := NewService(bus).RequestCheckout(context.Background(), sampleRequest); err != nil {
		t.Fatalf("request checkout: %v", err)
	}

	if len(received) != 1 {
		t.Fatalf("expected exactly one event, got %d", len(received))
	}
	e := received[0]
	if e.Email != "vedovelli@gmail.com" || e.SessionID != "s-1" || len(e.Items) != 1 || e.Items[0].Quantity != 2 {
		t.Fatalf("unexpected event %+v", e)
	}
	if e.OccurredAt().IsZero() {
		t.Fatal("expected event timestamp")
	}
}

func TestRequestCheckoutRejectsIncompleteRequests(t *testing.T) {
	svc := NewService(events.NewInMemoryBus(logger.Discard()))

	if err := svc.RequestCheckout(context.Background(), Request{Email: "  ", Items: sampleRequest.Items}); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for blank email, got %v", err)
	}
	if err := svc.RequestCheckout(context.Background(), Request{Email: "vedovelli@gmail.com"}); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for empty cart, got %v", err)
	}
}

func TestModuleQueuesCheckoutIntent(t *testing.T) {
	bus := events.NewInMemoryBus(logger.Discard())
	queue := &recordingQueue{}
	module := NewModule(bus, queue, logger.Discard())

	if err := module.Service().RequestCheckout(context.Background(), sampleRequest); err != nil {
		t.Fatalf("request checkout: %v", err)
	}

	if len(queue.payloads) != 1 {
		t.Fatalf("expected one queued intent, got %d", len(queue.payloads))
	}
	p := queue.payloads[0]
	if p.SessionID != "s-1" || p.Email != "vedovelli@gmail.com" || p.Items[0].Title != "Beautiful Watch" || p.RequestedAt.IsZero() {
		t.Fatalf("unexpected payload %+v", p)
	}
	if p.EventID == "" {
		t.Fatal("expected the payload to carry the event id")
	}

	if err := module.Service().RequestCheckout(context.Background(), sampleRequest); err != nil {
		t.Fatalf("request checkout: %v", err)
	}
	if queue.payloads[1].EventID == p.EventID {
		t.Fatal("expected each checkout to get its own event id")
	}
}

func TestModuleWithoutQueueOnlyLogs(t *testing.T) {
	bus := events.NewInMemoryBus(logger.Discard())
	module := NewModule(bus, nil, logger.Discard())

	if err := module.Service().RequestCheckout(context.Background(), sampleRequest); err != nil {
		t.Fatalf("expected logged intent without error, got %v", err)
	}
}

func TestQueueFailureSurfacesAsInternalError(t *testing.T) {
	bus := events.NewInMemoryBus(logger.Discard())
	module := NewModule(bus, &recordingQueue{err: errors.New("redis down")}, logger.Discard())

	err := module.Service().RequestCheckout(context.Background(), sampleRequest)
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestDispatcherRejectsForeignEvents(t *testing.T) {
	d := NewDispatcher(&recordingQueue{}, logger.Discard())

	if err := d.Handle(context.Background(), otherEventWrapper{}); err == nil {
		t.Fatal("expected error for a foreign event")
	}
}

type otherEventWrapper struct{ events.BaseEvent }

func (otherEventWrapper) EventName() string { return "other" }
