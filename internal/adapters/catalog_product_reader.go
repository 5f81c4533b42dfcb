package adapters

import (
	"context"

	"storefront/internal/cart"
	catsvc "storefront/internal/catalog/service"
	"storefront/internal/catalog/transport"
	searchsvc "storefront/internal/search/service"
	searchtransport "storefront/internal/search/transport"
)

// CartProductReader adapts the catalog service for the cart: it resolves a
// product ID into the cart's product value with a display price.
type CartProductReader struct {
	catalog *catsvc.Service
}

// NewCartProductReader creates a new catalog reader adapter.
func NewCartProductReader(catalog *catsvc.Service) *CartProductReader {
	return &CartProductReader{catalog: catalog}
}

// Product returns the cart product for id. Unknown IDs yield the catalog's
// not found error.
func (a *CartProductReader) Product(ctx context.Context, id string) (cart.Product, error) {
	p, err := a.catalog.GetProduct(ctx, id)
	if err != nil {
		return cart.Product{}, err
	}
	product := toCartProduct(p)
	if err := product.Validate(); err != nil {
		return cart.Product{}, err
	}
	return product, nil
}

func toCartProduct(p transport.ProductResponse) cart.Product {
	return cart.Product{
		ID:    p.ID,
		Title: p.Title,
		Price: p.Price,
		Image: p.Image,
	}
}

// CatalogSearchSource exposes the catalog to the search service.
type CatalogSearchSource struct {
	catalog *catsvc.Service
}

// NewCatalogSearchSource creates a new search source adapter.
func NewCatalogSearchSource(catalog *catsvc.Service) *CatalogSearchSource {
	return &CatalogSearchSource{catalog: catalog}
}

// AllProducts lists the catalog in search form.
func (a *CatalogSearchSource) AllProducts(ctx context.Context) ([]searchtransport.Product, error) {
	items, err := a.catalog.AllProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]searchtransport.Product, 0, len(items))
	for _, item := range items {
		out = append(out, searchtransport.Product{
			ID:    item.ID,
			Title: item.Title,
			Price: item.Price,
			Image: item.Image,
		})
	}
	return out, nil
}

// Compile-time check that CatalogSearchSource implements search/service.ProductSource.
var _ searchsvc.ProductSource = (*CatalogSearchSource)(nil)
