package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/platform/apperr"
)

// Repo implements the catalog repository on Postgres.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new Postgres catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const productColumns = "id::text, title, price_cents, image, created_at"

// Create inserts a product.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Product, error) {
	query := `
		INSERT INTO catalog_products (title, price_cents, image)
		VALUES ($1, $2, $3)
		RETURNING ` + productColumns

	var p Product
	if err := r.pool.QueryRow(ctx, query, params.Title, params.PriceCents, params.Image).Scan(
		&p.ID, &p.Title, &p.PriceCents, &p.Image, &p.CreatedAt,
	); err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// GetByID retrieves a product by ID.
func (r *Repo) GetByID(ctx context.Context, id string) (Product, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Product{}, apperr.NotFound(productNotFoundMessage)
	}

	query := `SELECT ` + productColumns + ` FROM catalog_products WHERE id = $1`

	var p Product
	if err := r.pool.QueryRow(ctx, query, parsed).Scan(
		&p.ID, &p.Title, &p.PriceCents, &p.Image, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		return Product{}, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

// List lists products with search and pagination.
func (r *Repo) List(ctx context.Context, params ListParams) ([]Product, int, error) {
	whereClause := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if search := strings.TrimSpace(params.Search); search != "" {
		whereClause = fmt.Sprintf("title ILIKE $%d", argIdx)
		args = append(args, "%"+search+"%")
		argIdx++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM catalog_products WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	sortColumn := "created_at"
	switch params.SortBy {
	case "title":
		sortColumn = "title"
	case "priceCents":
		sortColumn = "price_cents"
	}

	sortOrder := "ASC"
	if params.SortOrder == "desc" {
		sortOrder = "DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM catalog_products WHERE %s ORDER BY %s %s, id ASC`,
		productColumns, whereClause, sortColumn, sortOrder)
	if params.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, params.Limit, max(params.Offset, 0))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	items, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func scanProducts(rows pgx.Rows) ([]Product, error) {
	items := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Title, &p.PriceCents, &p.Image, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return items, nil
}
