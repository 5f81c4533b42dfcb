// Package storefront provides the storefront bounded context module: visitor
// sessions, the cart JSON API and the server-rendered store page.
package storefront

import (
	"context"

	carthandler "storefront/internal/cart/handler"
	"storefront/internal/cart/session"
	apphttp "storefront/internal/http"
	"storefront/internal/storefront/component"
	"storefront/internal/storefront/handler"
	"storefront/platform/config"
	"storefront/platform/httpkit"
	"storefront/platform/logger"
	"storefront/platform/validator"

	"github.com/gin-gonic/gin"
)

// ModuleConfig combines the config interfaces the storefront needs.
type ModuleConfig interface {
	config.SessionConfig
	config.CheckoutConfig
}

// ProductReader resolves catalog products for the cart.
type ProductReader interface {
	carthandler.ProductReader
	handler.ProductReader
}

// Module is the storefront bounded context module implementing http.Module.
type Module struct {
	sessions        *session.Store
	sessionMW       gin.HandlerFunc
	sweeper         *session.Sweeper
	cartHandler     *carthandler.Handler
	pageHandler     *handler.Handler
	checkoutLimiter *httpkit.IPRateLimiter
}

// NewModule creates the storefront module. emitters builds the checkout
// emitter for a session.
func NewModule(products ProductReader, search handler.Searcher, emitters func(sessionID string) component.CheckoutEmitter, cfg ModuleConfig, val *validator.Validator, log *logger.Logger) *Module {
	store := session.NewStore(cfg.GetSessionTTL())
	issuer := session.NewTokenIssuer(cfg.GetSessionSecret(), cfg.GetSessionTTL())

	return &Module{
		sessions:        store,
		sessionMW:       session.Middleware(store, issuer, cfg, log),
		sweeper:         session.NewSweeper(store, cfg.GetSessionSweepInterval(), log),
		cartHandler:     carthandler.New(products, emitters, val, log),
		pageHandler:     handler.New(products, search, emitters, val, log),
		checkoutLimiter: httpkit.NewPerMinuteLimiter(cfg.GetCheckoutRatePerMinute(), log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "storefront"
}

// Sessions returns the session store.
func (m *Module) Sessions() *session.Store {
	return m.sessions
}

// RunSweeper evicts idle sessions until ctx is done.
func (m *Module) RunSweeper(ctx context.Context) {
	m.sweeper.Run(ctx)
}

// RegisterRoutes mounts the cart API and the store page.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	api := ctx.V1.Group("/cart", m.sessionMW)
	api.GET("", m.cartHandler.GetCart)
	api.DELETE("", m.cartHandler.ClearCart)
	api.POST("/open", m.cartHandler.OpenCart)
	api.POST("/close", m.cartHandler.CloseCart)
	api.POST("/items", m.cartHandler.AddItem)
	api.DELETE("/items/:id", m.cartHandler.RemoveItem)
	api.POST("/items/:id/increase", m.cartHandler.IncreaseItem)
	api.POST("/items/:id/decrease", m.cartHandler.DecreaseItem)
	api.POST("/checkout", m.checkoutLimiter.RateLimit(), m.cartHandler.Checkout)

	page := ctx.Engine.Group("", m.sessionMW)
	m.pageHandler.RegisterRoutes(page, m.checkoutLimiter.RateLimit())
}

var _ apphttp.Module = (*Module)(nil)
