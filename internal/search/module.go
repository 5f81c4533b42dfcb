package search

import (
	apphttp "storefront/internal/http"
	"storefront/internal/search/handler"
	"storefront/internal/search/service"
	"storefront/platform/validator"
)

type Module struct {
	handler *handler.Handler
	service *service.Service
}

func NewModule(source service.ProductSource, val *validator.Validator) *Module {
	svc := service.New(source)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

func (m *Module) Name() string {
	return "search"
}

// Service returns the search service for the store page.
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/search")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
