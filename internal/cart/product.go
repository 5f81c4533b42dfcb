package cart

import (
	"strings"

	"storefront/platform/apperr"
)

// Product is the catalog value a line item refers to. The cart never builds
// one itself; the catalog side supplies it.
type Product struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
	Image string `json:"image"`
}

// Validate rejects products without an identity. Callers run it at the
// boundary before handing a product to a Manager.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return apperr.Validation("product id is required")
	}
	return nil
}
