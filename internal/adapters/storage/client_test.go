package storage

import (
	"context"
	"strings"
	"testing"
	"time"
)

type testConfig struct{ endpoint string }

func (c testConfig) GetMinIOEndpoint() string  { return c.endpoint }
func (c testConfig) GetMinIOAccessKey() string { return "minioadmin" }
func (c testConfig) GetMinIOSecretKey() string { return "minioadmin" }
func (c testConfig) GetMinIOUseSSL() bool      { return false }
func (c testConfig) IsMinIOEnabled() bool      { return c.endpoint != "" }

func TestNewMinIOServiceRequiresEndpoint(t *testing.T) {
	if _, err := NewMinIOService(testConfig{}); err == nil {
		t.Fatal("expected error without endpoint")
	}
}

func TestGenerateDownloadURLSignsLocally(t *testing.T) {
	svc, err := NewMinIOService(testConfig{endpoint: "localhost:9000"})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	presigned, err := svc.GenerateDownloadURL(context.Background(), "product-images", "watches/classic.jpg")
	if err != nil {
		t.Fatalf("presign: %v", err)
	}
	if !strings.HasPrefix(presigned.URL, "http://localhost:9000/product-images/watches/classic.jpg?") {
		t.Fatalf("unexpected url %q", presigned.URL)
	}
	if !strings.Contains(presigned.URL, "X-Amz-Signature=") {
		t.Fatalf("expected signed url, got %q", presigned.URL)
	}
	if !presigned.ExpiresAt.Equal(fixed.Add(PresignedURLTTL)) {
		t.Fatalf("unexpected expiry %s", presigned.ExpiresAt)
	}
}
