package component

import (
	"context"
	"strings"

	"storefront/internal/cart"
	"storefront/platform/apperr"
	"storefront/platform/validator"
)

// EmptyCartMessage is shown in the panel when the cart has no items.
const EmptyCartMessage = "Cart is empty"

// CheckoutIntent is the signal the panel raises when the visitor submits a
// non-empty cart with an email address.
type CheckoutIntent struct {
	Email string
	Items []cart.LineItem
}

// CheckoutEmitter receives checkout intents from the panel.
type CheckoutEmitter interface {
	EmitCheckout(ctx context.Context, intent CheckoutIntent) error
}

// CartPanel is the slide-over listing the cart contents with clear, close
// and checkout actions.
type CartPanel struct {
	cart    *cart.Manager
	emitter CheckoutEmitter
	val     *validator.Validator
}

// CartPanelView is the render model of the panel.
type CartPanelView struct {
	Hidden          bool
	Empty           bool
	EmptyMessage    string
	ShowClearButton bool
	ShowEmailInput  bool
	Items           []CartItemRowView
	TotalQuantity   int
}

// NewCartPanel creates a panel over m that hands checkout intents to emitter.
func NewCartPanel(m *cart.Manager, emitter CheckoutEmitter, val *validator.Validator) *CartPanel {
	return &CartPanel{cart: m, emitter: emitter, val: val}
}

// View returns the panel's render model.
func (p *CartPanel) View() CartPanelView {
	state := p.cart.State()
	hasItems := !state.IsEmpty()

	rows := p.Rows()
	items := make([]CartItemRowView, 0, len(rows))
	for _, row := range rows {
		if view, ok := row.View(); ok {
			items = append(items, view)
		}
	}

	view := CartPanelView{
		Hidden:          !state.Open,
		Empty:           !hasItems,
		ShowClearButton: hasItems,
		ShowEmailInput:  hasItems,
		Items:           items,
		TotalQuantity:   state.TotalQuantity(),
	}
	if !hasItems {
		view.EmptyMessage = EmptyCartMessage
	}
	return view
}

// Rows returns a row component for every line in the cart.
func (p *CartPanel) Rows() []*CartItemRow {
	state := p.cart.State()
	rows := make([]*CartItemRow, 0, len(state.Items))
	for _, item := range state.Items {
		rows = append(rows, NewCartItemRow(item.Product.ID, p.cart))
	}
	return rows
}

// Close hides the panel without touching its contents.
func (p *CartPanel) Close() { p.cart.Close() }

// Clear empties the cart, which also closes the panel.
func (p *CartPanel) Clear() { p.cart.ClearProducts() }

// Submit raises a checkout intent when the cart has items and email is
// non-blank. Any other submit is ignored and reports emitted == false.
// A non-blank email that is not an address is rejected.
func (p *CartPanel) Submit(ctx context.Context, email string) (emitted bool, err error) {
	email = strings.TrimSpace(email)
	state := p.cart.State()
	if email == "" || state.IsEmpty() {
		return false, nil
	}
	if err := p.val.Var(email, "email"); err != nil {
		return false, apperr.Validation("invalid email address").WithDetails(err.Error())
	}

	if err := p.emitter.EmitCheckout(ctx, CheckoutIntent{Email: email, Items: state.Items}); err != nil {
		return false, err
	}
	return true, nil
}
