package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
	"storefront/internal/cart/session"
	"storefront/internal/cart/transport"
	"storefront/internal/storefront/component"
	"storefront/platform/httpkit"
	"storefront/platform/logger"
	"storefront/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// ProductReader resolves catalog products for the cart.
type ProductReader interface {
	Product(ctx context.Context, id string) (cart.Product, error)
}

// EmitterFactory returns the checkout emitter for a session.
type EmitterFactory func(sessionID string) component.CheckoutEmitter

// Handler handles HTTP requests for the session's cart.
type Handler struct {
	products ProductReader
	emitters EmitterFactory
	val      *validator.Validator
	log      *logger.Logger
}

// New creates a new cart handler.
func New(products ProductReader, emitters EmitterFactory, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{products: products, emitters: emitters, val: val, log: log}
}

// GetCart returns the cart.
// GET /api/v1/cart
func (h *Handler) GetCart(c *gin.Context) {
	sess := session.Peek(c)
	httpkit.OK(c, transport.FromState(sess.Cart.State()))
}

// OpenCart shows the cart panel.
// POST /api/v1/cart/open
func (h *Handler) OpenCart(c *gin.Context) {
	h.mutate(c, "open", "", func(m *cart.Manager) { m.Open() })
}

// CloseCart hides the cart panel.
// POST /api/v1/cart/close
func (h *Handler) CloseCart(c *gin.Context) {
	h.mutate(c, "close", "", func(m *cart.Manager) { m.Close() })
}

// AddItem adds a catalog product and opens the cart.
// POST /api/v1/cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var req transport.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	product, err := h.products.Product(c.Request.Context(), req.ProductID)
	if httpkit.HandleError(c, err) {
		return
	}

	h.mutate(c, "add", product.ID, func(m *cart.Manager) {
		component.NewProductCard(product, m).AddToCart()
	})
}

// RemoveItem removes a line.
// DELETE /api/v1/cart/items/:id
func (h *Handler) RemoveItem(c *gin.Context) {
	id := c.Param("id")
	h.mutate(c, "remove", id, func(m *cart.Manager) { component.NewCartItemRow(id, m).Remove() })
}

// IncreaseItem adds one to a line's quantity.
// POST /api/v1/cart/items/:id/increase
func (h *Handler) IncreaseItem(c *gin.Context) {
	id := c.Param("id")
	h.mutate(c, "increase", id, func(m *cart.Manager) { component.NewCartItemRow(id, m).Increase() })
}

// DecreaseItem takes one from a line's quantity, stopping at zero.
// POST /api/v1/cart/items/:id/decrease
func (h *Handler) DecreaseItem(c *gin.Context) {
	id := c.Param("id")
	h.mutate(c, "decrease", id, func(m *cart.Manager) { component.NewCartItemRow(id, m).Decrease() })
}

// ClearCart empties and closes the cart.
// DELETE /api/v1/cart
func (h *Handler) ClearCart(c *gin.Context) {
	h.mutate(c, "clear", "", func(m *cart.Manager) { m.ClearProducts() })
}

// Checkout signals a checkout intent for the cart.
// POST /api/v1/cart/checkout
func (h *Handler) Checkout(c *gin.Context) {
	var req transport.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	sess := session.Peek(c)

	panel := component.NewCartPanel(sess.Cart, h.emitters(sess.ID), h.val)
	emitted, err := panel.Submit(c.Request.Context(), req.Email)
	if httpkit.HandleError(c, err) {
		return
	}

	if !emitted {
		httpkit.OK(c, transport.CheckoutResponse{Emitted: false})
		return
	}
	httpkit.JSON(c, http.StatusAccepted, transport.CheckoutResponse{Emitted: true})
}

func (h *Handler) mutate(c *gin.Context, op, productID string, fn func(m *cart.Manager)) {
	sess := session.Ensure(c)
	if sess == nil {
		return
	}

	fn(sess.Cart)
	state := sess.Cart.State()
	h.log.CartMutation(sess.ID, op, productID, len(state.Items), state.Open)
	httpkit.OK(c, transport.FromState(state))
}
