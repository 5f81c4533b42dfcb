package component

import "storefront/internal/cart"

// CartItemRow is one line of the cart panel.
type CartItemRow struct {
	productID string
	cart      *cart.Manager
}

// CartItemRowView is the render model of a cart line.
type CartItemRowView struct {
	ProductID string
	Title     string
	Price     string
	Image     string
	Quantity  int
}

// NewCartItemRow creates a row bound to productID.
func NewCartItemRow(productID string, m *cart.Manager) *CartItemRow {
	return &CartItemRow{productID: productID, cart: m}
}

func (r *CartItemRow) Increase() { r.cart.IncreaseQuantity(r.productID) }

func (r *CartItemRow) Decrease() { r.cart.DecreaseQuantity(r.productID) }

func (r *CartItemRow) Remove() { r.cart.RemoveProduct(r.productID) }

// View returns the row's render model. ok is false once the product has left
// the cart.
func (r *CartItemRow) View() (view CartItemRowView, ok bool) {
	item, ok := r.cart.Item(r.productID)
	if !ok {
		return CartItemRowView{}, false
	}
	return rowView(item), true
}

func rowView(item cart.LineItem) CartItemRowView {
	return CartItemRowView{
		ProductID: item.Product.ID,
		Title:     item.Product.Title,
		Price:     "$" + item.Product.Price,
		Image:     item.Product.Image,
		Quantity:  item.Quantity,
	}
}
