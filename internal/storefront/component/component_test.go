package component

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/cart"
	"storefront/platform/apperr"
	"storefront/platform/validator"
)

var watch = cart.Product{ID: "p1", Title: "Beautiful Watch", Price: "23.00", Image: "https://example.com/watch.jpg"}

type recordingEmitter struct {
	intents []CheckoutIntent
	err     error
}

func (r *recordingEmitter) EmitCheckout(_ context.Context, intent CheckoutIntent) error {
	if r.err != nil {
		return r.err
	}
	r.intents = append(r.intents, intent)
	return nil
}

func newPanel(m *cart.Manager) (*CartPanel, *recordingEmitter) {
	emitter := &recordingEmitter{}
	return NewCartPanel(m, emitter, validator.New()), emitter
}

func TestProductCardViewShowsDollarPrice(t *testing.T) {
	card := NewProductCard(watch, cart.New())

	view := card.View()
	if view.Title != "Beautiful Watch" || view.Price != "$23.00" {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestProductCardAddToCartTwice(t *testing.T) {
	m := cart.New()
	card := NewProductCard(watch, m)

	card.AddToCart()
	card.AddToCart()

	state := m.State()
	if !state.Open {
		t.Fatal("expected add to open the cart")
	}
	if len(state.Items) != 1 || state.Items[0].Quantity != 1 {
		t.Fatalf("expected one item at quantity 1, got %+v", state.Items)
	}
}

func TestCartItemRowActions(t *testing.T) {
	m := cart.New()
	m.AddProduct(watch)
	row := NewCartItemRow(watch.ID, m)

	row.Increase()
	row.Increase()
	row.Decrease()
	view, ok := row.View()
	if !ok || view.Quantity != 2 || view.Price != "$23.00" {
		t.Fatalf("expected quantity 2, got %+v (ok=%v)", view, ok)
	}

	row.Remove()
	if _, ok := row.View(); ok {
		t.Fatal("expected row to disappear after remove")
	}
}

func TestCartPanelHiddenWhenClosed(t *testing.T) {
	m := cart.New()
	panel, _ := newPanel(m)

	if !panel.View().Hidden {
		t.Fatal("expected closed cart panel to be hidden")
	}
	m.Open()
	if panel.View().Hidden {
		t.Fatal("expected open cart panel to be visible")
	}
}

func TestCartPanelEmptyView(t *testing.T) {
	m := cart.New()
	m.Open()
	panel, _ := newPanel(m)

	view := panel.View()
	if !view.Empty || view.EmptyMessage != "Cart is empty" {
		t.Fatalf("expected empty message, got %+v", view)
	}
	if view.ShowClearButton || view.ShowEmailInput {
		t.Fatal("expected no clear button or email input for an empty cart")
	}
}

func TestCartPanelWithItemsView(t *testing.T) {
	m := cart.New()
	m.Open()
	m.AddProduct(watch)
	panel, _ := newPanel(m)

	view := panel.View()
	if view.Empty || view.EmptyMessage != "" {
		t.Fatalf("expected non-empty view, got %+v", view)
	}
	if !view.ShowClearButton || !view.ShowEmailInput {
		t.Fatal("expected clear button and email input")
	}
	if len(view.Items) != 1 || view.Items[0].Title != "Beautiful Watch" || view.TotalQuantity != 1 {
		t.Fatalf("unexpected items %+v", view.Items)
	}
	if rows := panel.Rows(); len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestCartPanelCloseAndClear(t *testing.T) {
	m := cart.New()
	m.Open()
	m.AddProduct(watch)
	panel, _ := newPanel(m)

	panel.Close()
	if state := m.State(); state.Open || len(state.Items) != 1 {
		t.Fatalf("expected close to keep items, got %+v", state)
	}

	m.Open()
	panel.Clear()
	if state := m.State(); state.Open || len(state.Items) != 0 {
		t.Fatalf("expected clear to empty and close, got %+v", state)
	}
}

func TestSubmitWithEmptyEmailEmitsNothing(t *testing.T) {
	m := cart.New()
	m.AddProduct(watch)
	panel, emitter := newPanel(m)

	for _, email := range []string{"", "   "} {
		emitted, err := panel.Submit(context.Background(), email)
		if err != nil || emitted {
			t.Fatalf("expected swallowed submit for %q, got emitted=%v err=%v", email, emitted, err)
		}
	}
	if len(emitter.intents) != 0 {
		t.Fatalf("expected no intents, got %d", len(emitter.intents))
	}
}

func TestSubmitWithEmptyCartEmitsNothing(t *testing.T) {
	panel, emitter := newPanel(cart.New())

	emitted, err := panel.Submit(context.Background(), "vedovelli@gmail.com")
	if err != nil || emitted {
		t.Fatalf("expected swallowed submit, got emitted=%v err=%v", emitted, err)
	}
	if len(emitter.intents) != 0 {
		t.Fatal("expected no intents for an empty cart")
	}
}

func TestSubmitEmitsExactlyOnce(t *testing.T) {
	m := cart.New()
	m.AddProduct(watch)
	panel, emitter := newPanel(m)

	emitted, err := panel.Submit(context.Background(), "  vedovelli@gmail.com ")
	if err != nil || !emitted {
		t.Fatalf("expected emitted submit, got emitted=%v err=%v", emitted, err)
	}
	if len(emitter.intents) != 1 {
		t.Fatalf("expected exactly one intent, got %d", len(emitter.intents))
	}
	intent := emitter.intents[0]
	if intent.Email != "vedovelli@gmail.com" {
		t.Fatalf("expected trimmed email, got %q", intent.Email)
	}
	if len(intent.Items) != 1 || intent.Items[0].Product.ID != watch.ID {
		t.Fatalf("expected cart snapshot in intent, got %+v", intent.Items)
	}
	if len(m.State().Items) != 1 {
		t.Fatal("expected submit to leave the cart untouched")
	}
}

func TestSubmitRejectsMalformedEmail(t *testing.T) {
	m := cart.New()
	m.AddProduct(watch)
	panel, emitter := newPanel(m)

	emitted, err := panel.Submit(context.Background(), "not-an-email")
	if emitted || !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got emitted=%v err=%v", emitted, err)
	}
	if len(emitter.intents) != 0 {
		t.Fatal("expected no intent for malformed email")
	}
}

func TestSubmitPropagatesEmitterError(t *testing.T) {
	m := cart.New()
	m.AddProduct(watch)
	emitter := &recordingEmitter{err: errors.New("bus down")}
	panel := NewCartPanel(m, emitter, validator.New())

	emitted, err := panel.Submit(context.Background(), "vedovelli@gmail.com")
	if emitted || err == nil {
		t.Fatalf("expected emitter error, got emitted=%v err=%v", emitted, err)
	}
}
