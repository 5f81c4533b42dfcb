package service

import (
	"context"
	"testing"

	"storefront/internal/catalog/repository"
	"storefront/internal/catalog/transport"
	"storefront/platform/apperr"
	"storefront/platform/logger"
)

type prefixResolver struct{ prefix string }

func (r prefixResolver) ResolveImage(_ context.Context, image string) string {
	return r.prefix + image
}

func TestFormatPrice(t *testing.T) {
	cases := map[int64]string{
		2300:  "23.00",
		5:     "0.05",
		14999: "149.99",
		0:     "0.00",
		-250:  "-2.50",
	}
	for cents, want := range cases {
		if got := FormatPrice(cents); got != want {
			t.Fatalf("FormatPrice(%d) = %q, want %q", cents, got, want)
		}
	}
}

func TestListProductsClampsPaging(t *testing.T) {
	repo := repository.NewMemory()
	(&repository.Factory{}).CreateList(repo, 25)
	svc := New(repo, nil, logger.Discard())

	result, err := svc.ListProducts(context.Background(), transport.ListProductsRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Page != 1 || result.PageSize != 20 || len(result.Items) != 20 {
		t.Fatalf("expected default paging, got page=%d size=%d items=%d", result.Page, result.PageSize, len(result.Items))
	}
	if result.Total != 25 || result.TotalPages != 2 {
		t.Fatalf("expected 25 total over 2 pages, got %d/%d", result.Total, result.TotalPages)
	}

	result, _ = svc.ListProducts(context.Background(), transport.ListProductsRequest{Page: 2, PageSize: 500})
	if result.PageSize != 100 || len(result.Items) != 0 {
		t.Fatalf("expected clamped page size and empty second page, got size=%d items=%d", result.PageSize, len(result.Items))
	}
}

func TestGetProductResolvesImageAndPrice(t *testing.T) {
	repo := repository.NewMemory()
	seeded := repo.Seed(repository.Product{Title: "Beautiful Watch", PriceCents: 2300, Image: "watch.jpg"})
	svc := New(repo, prefixResolver{prefix: "https://cdn.example.com/"}, logger.Discard())

	got, err := svc.GetProduct(context.Background(), seeded[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Price != "23.00" {
		t.Fatalf("expected price 23.00, got %q", got.Price)
	}
	if got.Image != "https://cdn.example.com/watch.jpg" {
		t.Fatalf("expected resolved image, got %q", got.Image)
	}
}

func TestCreateProductTrimsInput(t *testing.T) {
	repo := repository.NewMemory()
	svc := New(repo, nil, logger.Discard())

	got, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{Title: "  Diver Watch ", PriceCents: 9900})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.Title != "Diver Watch" {
		t.Fatalf("expected trimmed title, got %q", got.Title)
	}

	all, err := svc.AllProducts(context.Background())
	if err != nil || len(all) != 1 {
		t.Fatalf("expected one product, got %d, %v", len(all), err)
	}
}

func TestCreateProductStripsMarkup(t *testing.T) {
	svc := New(repository.NewMemory(), nil, logger.Discard())

	got, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{Title: "<b>Pocket</b> Watch"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.Title != "Pocket Watch" {
		t.Fatalf("expected markup stripped, got %q", got.Title)
	}

	_, err = svc.CreateProduct(context.Background(), transport.CreateProductRequest{Title: "<img src=x>"})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for markup-only title, got %v", err)
	}
}
