package catalog

import (
	"strings"

	"github.com/ShahJahanApurbo/decoration-store/internal/domain"
)

// NormalizeCategory produces the canonical category key: lowercase,
// hyphens become spaces, runs of whitespace collapse to one space.
// URL slugs ("wall-decor"), product types ("Wall Decor") and tags all map
// to the same key.
func NormalizeCategory(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

// MatchesCategory reports whether a product belongs to a category key,
// checking the product type and every tag under the same normalization.
func MatchesCategory(product domain.Product, category string) bool {
	key := NormalizeCategory(category)
	if key == "" {
		return true
	}
	if NormalizeCategory(product.ProductType) == key {
		return true
	}
	for _, tag := range product.Tags {
		if NormalizeCategory(tag) == key {
			return true
		}
	}
	return false
}

// FilterByCategory keeps products matching the category key, preserving
// order. An empty key returns the input unchanged.
func FilterByCategory(products []domain.Product, category string) []domain.Product {
	if NormalizeCategory(category) == "" {
		return products
	}
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if MatchesCategory(p, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
