package service

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/search/transport"
	"storefront/platform/apperr"
)

// ProductSource lists every product that can be searched.
type ProductSource interface {
	AllProducts(ctx context.Context) ([]transport.Product, error)
}

type Service struct {
	source ProductSource
}

func New(source ProductSource) *Service {
	return &Service{source: source}
}

// Search returns the products whose normalized title contains the
// normalized term. An empty term matches everything.
func (s *Service) Search(ctx context.Context, term string) (transport.SearchResponse, error) {
	products, err := s.source.AllProducts(ctx)
	if err != nil {
		appErr := apperr.Internal("search failed").WithOp("search.Search")
		appErr.Err = err
		return transport.SearchResponse{}, appErr
	}

	needle := Normalize(term)
	items := make([]transport.Product, 0, len(products))
	for _, p := range products {
		if needle == "" || strings.Contains(Normalize(p.Title), needle) {
			items = append(items, p)
		}
	}

	return transport.SearchResponse{
		Query: strings.TrimSpace(term),
		Items: items,
		Total: len(items),
		Label: ResultLabel(len(items)),
	}, nil
}

// ResultLabel renders a result count, e.g. "1 Product" or "0 Products".
func ResultLabel(n int) string {
	if n == 1 {
		return "1 Product"
	}
	return fmt.Sprintf("%d Products", n)
}
