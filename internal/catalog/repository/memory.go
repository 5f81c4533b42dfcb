package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"storefront/platform/apperr"

	"github.com/google/uuid"
)

const productNotFoundMessage = "product not found"

// MemoryRepository is the in-process mock backend used in development and
// tests. It keeps products in creation order.
type MemoryRepository struct {
	mu       sync.RWMutex
	products []Product
	now      func() time.Time
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

var _ Repository = (*MemoryRepository)(nil)

// Create stores a new product with a generated ID.
func (r *MemoryRepository) Create(_ context.Context, params CreateParams) (Product, error) {
	return r.insert(Product{
		ID:         uuid.NewString(),
		Title:      params.Title,
		PriceCents: params.PriceCents,
		Image:      params.Image,
	}), nil
}

// Seed stores products as given, generating IDs for those without one.
func (r *MemoryRepository) Seed(products ...Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		out = append(out, r.insert(p))
	}
	return out
}

func (r *MemoryRepository) insert(p Product) Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.now()
	}
	r.products = append(r.products, p)
	return p
}

// GetByID returns the product with id.
func (r *MemoryRepository) GetByID(_ context.Context, id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, apperr.NotFound(productNotFoundMessage)
}

// List returns a page of products whose title contains params.Search,
// ignoring case, together with the total number of matches.
func (r *MemoryRepository) List(_ context.Context, params ListParams) ([]Product, int, error) {
	needle := strings.ToLower(strings.TrimSpace(params.Search))

	r.mu.RLock()
	matches := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if needle == "" || strings.Contains(strings.ToLower(p.Title), needle) {
			matches = append(matches, p)
		}
	}
	r.mu.RUnlock()

	sortProducts(matches, params.SortBy, params.SortOrder)

	total := len(matches)
	start := min(max(params.Offset, 0), total)
	end := total
	if params.Limit > 0 {
		end = min(start+params.Limit, total)
	}
	return matches[start:end], total, nil
}

func sortProducts(products []Product, sortBy, sortOrder string) {
	var less func(a, b Product) bool
	switch sortBy {
	case "title":
		less = func(a, b Product) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	case "priceCents":
		less = func(a, b Product) bool { return a.PriceCents < b.PriceCents }
	case "createdAt":
		less = func(a, b Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}
	desc := sortOrder == "desc"
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
