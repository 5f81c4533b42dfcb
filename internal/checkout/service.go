// Package checkout turns cart-panel checkout intents into CheckoutRequested
// events and hands them to the background queue. No order or payment is
// created.
package checkout

import (
	"context"
	"strings"

	"storefront/internal/events"
	"storefront/platform/apperr"
)

// Item is one cart line at the time of the request.
type Item struct {
	ProductID string
	Title     string
	Quantity  int
}

// Request is a checkout intent scoped to one storefront session.
type Request struct {
	SessionID string
	Email     string
	Items     []Item
}

// Service publishes checkout intents on the event bus.
type Service struct {
	bus events.Bus
}

func NewService(bus events.Bus) *Service {
	return &Service{bus: bus}
}

// RequestCheckout publishes exactly one CheckoutRequested event and waits
// for its subscribers.
func (s *Service) RequestCheckout(ctx context.Context, req Request) error {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return apperr.Validation("email is required")
	}
	if len(req.Items) == 0 {
		return apperr.Validation("cart is empty")
	}

	items := make([]events.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, events.CheckoutItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
		})
	}

	err := s.bus.PublishSync(ctx, events.CheckoutRequested{
		BaseEvent: events.NewBaseEvent(),
		SessionID: req.SessionID,
		Email:     email,
		Items:     items,
	})
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "checkout could not be queued", err).WithOp("checkout.RequestCheckout")
	}
	return nil
}
