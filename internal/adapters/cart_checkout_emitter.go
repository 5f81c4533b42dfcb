package adapters

import (
	"context"

	"storefront/internal/checkout"
	"storefront/internal/storefront/component"
)

// CartCheckoutEmitter forwards the cart panel's checkout intent to the
// checkout service on behalf of one session.
type CartCheckoutEmitter struct {
	checkout  *checkout.Service
	sessionID string
}

// NewCartCheckoutEmitter creates an emitter bound to sessionID.
func NewCartCheckoutEmitter(svc *checkout.Service, sessionID string) *CartCheckoutEmitter {
	return &CartCheckoutEmitter{checkout: svc, sessionID: sessionID}
}

// EmitCheckout publishes the intent with the session's cart lines.
func (e *CartCheckoutEmitter) EmitCheckout(ctx context.Context, intent component.CheckoutIntent) error {
	items := make([]checkout.Item, 0, len(intent.Items))
	for _, line := range intent.Items {
		items = append(items, checkout.Item{
			ProductID: line.Product.ID,
			Title:     line.Product.Title,
			Quantity:  line.Quantity,
		})
	}
	return e.checkout.RequestCheckout(ctx, checkout.Request{
		SessionID: e.sessionID,
		Email:     intent.Email,
		Items:     items,
	})
}

// Compile-time check that CartCheckoutEmitter implements component.CheckoutEmitter.
var _ component.CheckoutEmitter = (*CartCheckoutEmitter)(nil)
