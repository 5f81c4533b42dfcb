// Package handler serves the server-rendered store page and its form posts.
// Every form post redirects back to the page.
package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"storefront/internal/cart"
	"storefront/internal/cart/session"
	searchtransport "storefront/internal/search/transport"
	"storefront/internal/storefront/component"
	"storefront/platform/apperr"
	"storefront/platform/logger"
	"storefront/platform/validator"
)

const brand = "Brand"

// ProductReader resolves catalog products for the cart.
type ProductReader interface {
	Product(ctx context.Context, id string) (cart.Product, error)
}

// Searcher filters the catalog by a search term.
type Searcher interface {
	Search(ctx context.Context, term string) (searchtransport.SearchResponse, error)
}

// EmitterFactory returns the checkout emitter for a session.
type EmitterFactory func(sessionID string) component.CheckoutEmitter

type Handler struct {
	products ProductReader
	search   Searcher
	emitters EmitterFactory
	val      *validator.Validator
	log      *logger.Logger
}

func New(products ProductReader, search Searcher, emitters EmitterFactory, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{products: products, search: search, emitters: emitters, val: val, log: log}
}

// RegisterRoutes mounts the page and form endpoints on rg, which must carry
// the session middleware. checkoutMW runs in front of the checkout form only.
func (h *Handler) RegisterRoutes(rg gin.IRoutes, checkoutMW ...gin.HandlerFunc) {
	rg.GET("/", h.Store)
	rg.POST("/search", h.SearchForm)
	rg.POST("/cart/open", h.OpenCart)
	rg.POST("/cart/close", h.CloseCart)
	rg.POST("/cart/clear", h.ClearCart)
	rg.POST("/cart/add/:id", h.AddToCart)
	rg.POST("/cart/items/:id/increase", h.IncreaseItem)
	rg.POST("/cart/items/:id/decrease", h.DecreaseItem)
	rg.POST("/cart/items/:id/remove", h.RemoveItem)
	rg.POST("/cart/checkout", append(checkoutMW, h.Checkout)...)
}

// Store renders the store page.
// GET /?q=
func (h *Handler) Store(c *gin.Context) {
	sess := session.Peek(c)

	query := strings.TrimSpace(c.Query("q"))
	result, err := h.search.Search(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "store unavailable")
		return
	}

	products := make([]productCardData, 0, len(result.Items))
	for _, item := range result.Items {
		card := component.NewProductCard(cart.Product{ID: item.ID, Title: item.Title, Price: item.Price, Image: item.Image}, sess.Cart)
		view := card.View()
		products = append(products, productCardData{ID: view.ID, Title: view.Title, Price: view.Price, Image: view.Image})
	}

	panel := component.NewCartPanel(sess.Cart, h.emitters(sess.ID), h.val).View()
	rows := make([]cartRowData, 0, len(panel.Items))
	for _, row := range panel.Items {
		rows = append(rows, cartRowData(row))
	}

	c.Render(http.StatusOK, render.HTML{
		Template: pageTemplate,
		Name:     "store.html",
		Data: pageData{
			Brand:       brand,
			Query:       query,
			ResultLabel: result.Label,
			Products:    products,
			Notice:      noticeMessages[c.Query("notice")],
			Cart: cartPanelData{
				Hidden:          panel.Hidden,
				Empty:           panel.Empty,
				EmptyMessage:    panel.EmptyMessage,
				ShowClearButton: panel.ShowClearButton,
				ShowEmailInput:  panel.ShowEmailInput,
				Items:           rows,
				TotalQuantity:   panel.TotalQuantity,
			},
		},
	})
}

// SearchForm redirects to the page filtered by the submitted term.
// POST /search
func (h *Handler) SearchForm(c *gin.Context) {
	redirectToStore(c, "")
}

// POST /cart/open
func (h *Handler) OpenCart(c *gin.Context) {
	h.mutate(c, "open", "", func(m *cart.Manager) { m.Open() })
}

// POST /cart/close
func (h *Handler) CloseCart(c *gin.Context) {
	h.mutate(c, "close", "", func(m *cart.Manager) { component.NewCartPanel(m, nil, h.val).Close() })
}

// POST /cart/clear
func (h *Handler) ClearCart(c *gin.Context) {
	h.mutate(c, "clear", "", func(m *cart.Manager) { component.NewCartPanel(m, nil, h.val).Clear() })
}

// AddToCart is the product card's add button.
// POST /cart/add/:id
func (h *Handler) AddToCart(c *gin.Context) {
	product, err := h.products.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			redirectToStore(c, noticeUnknownItem)
			return
		}
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "store unavailable")
		return
	}
	h.mutate(c, "add", product.ID, func(m *cart.Manager) { component.NewProductCard(product, m).AddToCart() })
}

// POST /cart/items/:id/increase
func (h *Handler) IncreaseItem(c *gin.Context) {
	id := c.Param("id")
	h.mutate(c, "increase", id, func(m *cart.Manager) { component.NewCartItemRow(id, m).Increase() })
}

// POST /cart/items/:id/decrease
func (h *Handler) DecreaseItem(c *gin.Context) {
	id := c.Param("id")
	h.mutate(c, "decrease", id, func(m *cart.Manager) { component.NewCartItemRow(id, m).Decrease() })
}

// POST /cart/items/:id/remove
func (h *Handler) RemoveItem(c *gin.Context) {
	id := c.Param("id")
	h.mutate(c, "remove", id, func(m *cart.Manager) { component.NewCartItemRow(id, m).Remove() })
}

// Checkout submits the cart panel's email form.
// POST /cart/checkout
func (h *Handler) Checkout(c *gin.Context) {
	sess := session.Peek(c)

	panel := component.NewCartPanel(sess.Cart, h.emitters(sess.ID), h.val)
	emitted, err := panel.Submit(c.Request.Context(), c.PostForm("email"))
	switch {
	case apperr.Is(err, apperr.KindValidation):
		redirectToStore(c, noticeInvalidEmail)
	case err != nil:
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "checkout unavailable")
	case emitted:
		redirectToStore(c, noticeCheckoutSent)
	default:
		redirectToStore(c, "")
	}
}

func (h *Handler) mutate(c *gin.Context, op, productID string, fn func(m *cart.Manager)) {
	sess := session.Ensure(c)
	if sess == nil {
		return
	}

	fn(sess.Cart)
	state := sess.Cart.State()
	h.log.CartMutation(sess.ID, op, productID, len(state.Items), state.Open)
	redirectToStore(c, "")
}

// redirectToStore sends the browser back to the page, keeping the search
// term from the posted form.
func redirectToStore(c *gin.Context, notice string) {
	params := url.Values{}
	if q := strings.TrimSpace(c.PostForm("q")); q != "" {
		params.Set("q", q)
	}
	if notice != "" {
		params.Set("notice", notice)
	}

	target := "/"
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}
	c.Redirect(http.StatusSeeOther, target)
}
