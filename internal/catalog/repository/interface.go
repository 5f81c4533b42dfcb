package repository

import (
	"context"
	"time"
)

// Product represents a catalog product.
type Product struct {
	ID         string    `db:"id" yaml:"id"`
	Title      string    `db:"title" yaml:"title"`
	PriceCents int64     `db:"price_cents" yaml:"priceCents"`
	Image      string    `db:"image" yaml:"image"`
	CreatedAt  time.Time `db:"created_at" yaml:"-"`
}

// CreateParams contains data for creating a product.
type CreateParams struct {
	Title      string
	PriceCents int64
	Image      string
}

// ListParams defines filters for listing products. A zero Limit returns
// every matching product.
type ListParams struct {
	Search    string
	Offset    int
	Limit     int
	SortBy    string
	SortOrder string
}

// Repository defines catalog storage operations.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context, params ListParams) ([]Product, int, error)
}
