package adapters

import (
	"context"
	"strings"

	"storefront/internal/adapters/storage"
	catsvc "storefront/internal/catalog/service"
	"storefront/platform/logger"
)

// ProductImagePresigner resolves catalog image references. Absolute URLs
// pass through; anything else is treated as an object key in the product
// image bucket and presigned.
type ProductImagePresigner struct {
	storage storage.StorageService
	bucket  string
	log     *logger.Logger
}

// NewProductImagePresigner creates a new image presigner adapter.
func NewProductImagePresigner(storageSvc storage.StorageService, bucket string, log *logger.Logger) *ProductImagePresigner {
	return &ProductImagePresigner{storage: storageSvc, bucket: bucket, log: log}
}

// ResolveImage returns a loadable URL for image, or "" when presigning fails.
func (p *ProductImagePresigner) ResolveImage(ctx context.Context, image string) string {
	if image == "" || strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}

	presigned, err := p.storage.GenerateDownloadURL(ctx, p.bucket, strings.TrimPrefix(image, "/"))
	if err != nil {
		p.log.Warn("product image presign failed", "key", image, "error", err)
		return ""
	}
	return presigned.URL
}

// Compile-time check that ProductImagePresigner implements catalog/service.ImageResolver.
var _ catsvc.ImageResolver = (*ProductImagePresigner)(nil)
