package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog/repository"
	"storefront/internal/catalog/service"
	"storefront/internal/catalog/transport"
	"storefront/platform/logger"
	"storefront/platform/validator"
)

func newTestRouter(t *testing.T) (*gin.Engine, []repository.Product) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemory()
	seeded := repo.Seed(repository.Product{
		ID:         "9b3f4c1e-8d2a-4f61-9a57-1f0d2c6b7e01",
		Title:      "Beautiful Watch",
		PriceCents: 2300,
	})
	h := New(service.New(repo, nil, logger.Discard()), validator.New())

	r := gin.New()
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProductByID)
	r.POST("/products", h.CreateProduct)
	return r, seeded
}

func TestListProducts(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?search=watch", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body transport.ProductListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 1 || body.Items[0].Price != "23.00" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestListProductsRejectsUnknownSort(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?sortBy=color", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetProductByID(t *testing.T) {
	r, seeded := newTestRouter(t)

	cases := []struct {
		name string
		id   string
		want int
	}{
		{"found", seeded[0].ID, http.StatusOK},
		{"malformed", "not-a-uuid", http.StatusBadRequest},
		{"unknown", "00000000-0000-0000-0000-000000000000", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/"+tc.id, nil))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestCreateProduct(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"title":"Pilot Watch","priceCents":4500}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"title":"   ","priceCents":4500}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank title, got %d", w.Code)
	}
}
