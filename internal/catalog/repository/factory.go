package repository

import (
	"fmt"

	"github.com/google/uuid"
)

const defaultProductImage = "https://images.unsplash.com/photo-1542496658-e33a6d0d50f6?auto=format&fit=crop&w=750&q=80"

var factoryTitles = []string{
	"Wrist Watch",
	"Diver Watch",
	"Pilot Watch",
	"Field Watch",
	"Dress Watch",
}

// Factory builds sample products for the mock backend, in the spirit of a
// fixture factory: each call yields a new product with predictable fields.
type Factory struct {
	seq int
}

// Build returns the next generated product.
func (f *Factory) Build() Product {
	f.seq++
	return Product{
		ID:         uuid.NewString(),
		Title:      fmt.Sprintf("%s %d", factoryTitles[(f.seq-1)%len(factoryTitles)], f.seq),
		PriceCents: int64(1000 + (f.seq*733)%9000),
		Image:      defaultProductImage,
	}
}

// CreateList seeds n generated products into repo and returns them.
func (f *Factory) CreateList(repo *MemoryRepository, n int) []Product {
	products := make([]Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, f.Build())
	}
	return repo.Seed(products...)
}
