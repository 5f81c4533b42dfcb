// Package catalog provides the catalog bounded context module.
package catalog

import (
	"fmt"

	"storefront/internal/catalog/handler"
	"storefront/internal/catalog/repository"
	"storefront/internal/catalog/service"
	apphttp "storefront/internal/http"
	"storefront/platform/config"
	"storefront/platform/logger"
	"storefront/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates the catalog module on Postgres.
func NewModule(pool *pgxpool.Pool, images service.ImageResolver, val *validator.Validator, log *logger.Logger) *Module {
	return newModule(repository.New(pool), images, val, log)
}

// NewMemoryModule creates the catalog module on the in-memory mock backend,
// seeded with the embedded fixtures followed by generated products.
func NewMemoryModule(cfg config.CatalogConfig, images service.ImageResolver, val *validator.Validator, log *logger.Logger) (*Module, error) {
	fixtures, err := repository.LoadFixtures()
	if err != nil {
		return nil, fmt.Errorf("load catalog fixtures: %w", err)
	}

	repo := repository.NewMemory()
	repo.Seed(fixtures...)
	factory := &repository.Factory{}
	factory.CreateList(repo, cfg.GetCatalogSeedCount())

	log.Info("catalog seeded", "fixtures", len(fixtures), "generated", cfg.GetCatalogSeedCount())
	return newModule(repo, images, val, log), nil
}

func newModule(repo repository.Repository, images service.ImageResolver, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repo, images, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/catalog/products", m.handler.ListProducts)
	ctx.V1.GET("/catalog/products/:id", m.handler.GetProductByID)

	adminGroup := ctx.Admin.Group("/catalog")
	adminGroup.POST("/products", m.handler.CreateProduct)
}
