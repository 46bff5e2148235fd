package helper

import (
	"path/filepath"
	"pizzeria_kassa/model"
	"strings"
)

// ExtractPublicID takes <folder>/<public-id> out of a delivery URL such as
// https://res.cloudinary.com/<cloud>/image/upload/v123/pizzeria/products/p_1.jpg.
func ExtractPublicID(url string) string {
	parts := strings.Split(url, "/")
	n := len(parts)
	if n < 4 {
		return ""
	}
	start := n - 1
	for i, p := range parts {
		if p == "upload" {
			start = i + 1
			break
		}
	}
	// skip the version segment
	if start < n-1 && len(parts[start]) > 1 && parts[start][0] == 'v' && strings.Trim(parts[start][1:], "0123456789") == "" {
		start++
	}
	publicID := strings.Join(parts[start:], "/")
	return strings.TrimSuffix(publicID, filepath.Ext(publicID))
}

// ProductImagePublicID returns the stored public id of a product image, or
// derives it from the URL for images that were linked by hand.
func ProductImagePublicID(p model.Product) string {
	if p.ImagePublicId != nil && *p.ImagePublicId != "" {
		return *p.ImagePublicId
	}
	if p.ImageUrl == nil || !strings.Contains(*p.ImageUrl, "res.cloudinary.com") {
		return ""
	}
	return ExtractPublicID(*p.ImageUrl)
}
