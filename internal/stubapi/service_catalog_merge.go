package stubapi

import (
	"strings"

	"github.com/MKhiriev/go-shop-admin/models"
)

// applyPatch merges the non-nil fields of patch into p.
func applyPatch(p models.Product, patch models.ProductPatch) models.Product {
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		p.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.MRP != nil {
		p.MRP = *patch.MRP
	}
	if patch.Unit != nil {
		p.Unit = *patch.Unit
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	return p
}

// matchesFilter applies the listing rules: search is a case-insensitive
// substring of name or description, category is an exact match.
func matchesFilter(p models.Product, filter models.ProductFilter) bool {
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	if filter.Search == "" {
		return true
	}

	needle := strings.ToLower(filter.Search)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}
