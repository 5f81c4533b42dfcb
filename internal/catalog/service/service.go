package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/catalog/repository"
	"storefront/internal/catalog/transport"
	"storefront/platform/apperr"
	"storefront/platform/logger"
	"storefront/platform/sanitize"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ImageResolver turns a stored image reference into a URL a browser can load.
type ImageResolver interface {
	ResolveImage(ctx context.Context, image string) string
}

type passthroughResolver struct{}

func (passthroughResolver) ResolveImage(_ context.Context, image string) string { return image }

// Service provides business logic for catalog.
type Service struct {
	repo   repository.Repository
	images ImageResolver
	log    *logger.Logger
}

// New creates a new catalog service. A nil resolver leaves image
// references untouched.
func New(repo repository.Repository, images ImageResolver, log *logger.Logger) *Service {
	if images == nil {
		images = passthroughResolver{}
	}
	return &Service{repo: repo, images: images, log: log}
}

// ListProducts retrieves products with search and pagination.
func (s *Service) ListProducts(ctx context.Context, req transport.ListProductsRequest) (transport.ProductListResponse, error) {
	page := req.Page
	pageSize := req.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	items, total, err := s.repo.List(ctx, repository.ListParams{
		Search:    strings.TrimSpace(req.Search),
		Offset:    (page - 1) * pageSize,
		Limit:     pageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return transport.ProductListResponse{}, err
	}

	totalPages := (total + pageSize - 1) / pageSize
	return transport.ProductListResponse{
		Items:      s.toResponses(ctx, items),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// AllProducts returns every product in catalog order.
func (s *Service) AllProducts(ctx context.Context) ([]transport.ProductResponse, error) {
	items, _, err := s.repo.List(ctx, repository.ListParams{})
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, items), nil
}

// GetProduct retrieves a product by ID.
func (s *Service) GetProduct(ctx context.Context, id string) (transport.ProductResponse, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ProductResponse{}, err
	}
	return s.toResponse(ctx, product), nil
}

// CreateProduct creates a new product.
func (s *Service) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (transport.ProductResponse, error) {
	title := sanitize.Text(req.Title)
	if title == "" {
		return transport.ProductResponse{}, apperr.Validation("title must contain text")
	}

	product, err := s.repo.Create(ctx, repository.CreateParams{
		Title:      title,
		PriceCents: req.PriceCents,
		Image:      strings.TrimSpace(req.Image),
	})
	if err != nil {
		return transport.ProductResponse{}, err
	}

	s.log.Info("catalog product created", "productId", product.ID, "title", product.Title)
	return s.toResponse(ctx, product), nil
}

// FormatPrice renders cents as a display price with two decimals, e.g. 2300
// becomes "23.00".
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func (s *Service) toResponses(ctx context.Context, items []repository.Product) []transport.ProductResponse {
	out := make([]transport.ProductResponse, 0, len(items))
	for _, item := range items {
		out = append(out, s.toResponse(ctx, item))
	}
	return out
}

func (s *Service) toResponse(ctx context.Context, p repository.Product) transport.ProductResponse {
	return transport.ProductResponse{
		ID:         p.ID,
		Title:      p.Title,
		PriceCents: p.PriceCents,
		Price:      FormatPrice(p.PriceCents),
		Image:      s.images.ResolveImage(ctx, p.Image),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}
