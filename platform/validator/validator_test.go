package validator

import "testing"

type addRequest struct {
	ProductID string `validate:"required,notblank"`
}

func TestNotBlankRejectsWhitespace(t *testing.T) {
	val := New()

	if err := val.Struct(addRequest{ProductID: "   "}); err == nil {
		t.Fatal("expected whitespace-only product id to fail validation")
	}
	if err := val.Struct(addRequest{ProductID: "p-1"}); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestVarEmail(t *testing.T) {
	val := New()

	if err := val.Var("vedovelli@gmail.com", "email"); err != nil {
		t.Fatalf("expected valid email, got %v", err)
	}
	if err := val.Var("not-an-email", "email"); err == nil {
		t.Fatal("expected invalid email to fail")
	}
}
