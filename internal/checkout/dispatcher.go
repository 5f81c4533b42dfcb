package checkout

import (
	"context"
	"fmt"

	"storefront/internal/events"
	"storefront/internal/scheduler"
	"storefront/platform/logger"
)

// Dispatcher forwards CheckoutRequested events to the task queue. Without a
// queue the intent is only logged.
type Dispatcher struct {
	queue scheduler.CheckoutEnqueuer
	log   *logger.Logger
}

func NewDispatcher(queue scheduler.CheckoutEnqueuer, log *logger.Logger) *Dispatcher {
	return &Dispatcher{queue: queue, log: log}
}

func (d *Dispatcher) Handle(ctx context.Context, event events.Event) error {
	e, ok := event.(events.CheckoutRequested)
	if !ok {
		return fmt.Errorf("checkout dispatcher: unexpected event %T", event)
	}

	if d.queue == nil {
		d.log.CheckoutIntent(e.SessionID, e.EventID(), len(e.Items), false)
		return nil
	}

	items := make([]scheduler.CheckoutIntentItem, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, scheduler.CheckoutIntentItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
		})
	}

	if err := d.queue.EnqueueCheckoutIntent(ctx, scheduler.CheckoutIntentPayload{
		EventID:     e.EventID(),
		SessionID:   e.SessionID,
		Email:       e.Email,
		Items:       items,
		RequestedAt: e.OccurredAt(),
	}); err != nil {
		return fmt.Errorf("enqueue checkout intent: %w", err)
	}

	d.log.CheckoutIntent(e.SessionID, e.EventID(), len(e.Items), true)
	return nil
}

var _ events.Handler = (*Dispatcher)(nil)
