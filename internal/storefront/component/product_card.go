// Package component holds the storefront UI surfaces. Each surface is handed
// the session's cart manager and translates user gestures into manager calls.
package component

import "storefront/internal/cart"

// ProductCard shows one catalog product with an add-to-cart action.
type ProductCard struct {
	product cart.Product
	cart    *cart.Manager
}

// ProductCardView is the render model of a product card.
type ProductCardView struct {
	ID    string
	Title string
	Price string // formatted with a currency sign, e.g. "$23.00"
	Image string
}

// NewProductCard creates a card for product backed by m.
func NewProductCard(product cart.Product, m *cart.Manager) *ProductCard {
	return &ProductCard{product: product, cart: m}
}

// AddToCart opens the cart and adds the product. Adding a product that is
// already in the cart only opens the cart.
func (c *ProductCard) AddToCart() {
	c.cart.Open()
	c.cart.AddProduct(c.product)
}

// View returns the card's render model.
func (c *ProductCard) View() ProductCardView {
	return ProductCardView{
		ID:    c.product.ID,
		Title: c.product.Title,
		Price: "$" + c.product.Price,
		Image: c.product.Image,
	}
}
