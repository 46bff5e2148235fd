package helper

import (
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"testing"
)

func TestExtractPublicID(t *testing.T) {
	tests := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v1712345/pizzeria/products/product_1.jpg": "pizzeria/products/product_1",
		"https://res.cloudinary.com/demo/image/upload/pizzeria/products/p.png":                  "pizzeria/products/p",
		"https://res.cloudinary.com/demo/image/upload/v1/logo.webp":                             "logo",
		"short/url":                                                                             "",
	}
	for url, want := range tests {
		if got := ExtractPublicID(url); got != want {
			t.Errorf("ExtractPublicID(%q) = %q, want %q", url, got, want)
		}
	}
}

func TestProductImagePublicID(t *testing.T) {
	stored := model.Product{ImagePublicId: utils.Ptr("pizzeria/products/a"), ImageUrl: utils.Ptr("https://res.cloudinary.com/x/image/upload/b.jpg")}
	if got := ProductImagePublicID(stored); got != "pizzeria/products/a" {
		t.Fatalf("stored id = %q", got)
	}
	linked := model.Product{ImageUrl: utils.Ptr("https://res.cloudinary.com/x/image/upload/v9/pizzeria/products/b.jpg")}
	if got := ProductImagePublicID(linked); got != "pizzeria/products/b" {
		t.Fatalf("derived id = %q", got)
	}
	external := model.Product{ImageUrl: utils.Ptr("https://example.com/img/c.jpg")}
	if got := ProductImagePublicID(external); got != "" {
		t.Fatalf("external image gave %q", got)
	}
}
