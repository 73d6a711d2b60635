package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/pagelab/internal/domain/catalog"
)

// ProductFilter restricts products by price range and, optionally, category.
type ProductFilter struct {
	// Category is matched case-insensitively; empty means any category.
	Category string
	MinPrice float64
	// MaxPrice may be +Inf.
	MaxPrice float64
}

// AppliedFilters echoes the filter back to the client. MaxPrice is nil when
// the range is unbounded.
type AppliedFilters struct {
	Category string   `json:"category,omitempty"`
	MinPrice float64  `json:"minPrice"`
	MaxPrice *float64 `json:"maxPrice"`
}

// Applied reports the filter in its response form
func (f ProductFilter) Applied() AppliedFilters {
	applied := AppliedFilters{
		Category: f.Category,
		MinPrice: f.MinPrice,
	}
	if !math.IsInf(f.MaxPrice, 1) {
		upper := f.MaxPrice
		applied.MaxPrice = &upper
	}
	return applied
}

// ParsePrice parses a price bound, falling back when raw is absent or not a
// finite number.
func ParsePrice(raw string, fallback float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// FilterProducts keeps products with MinPrice <= price <= MaxPrice that
// match the category, preserving order.
func FilterProducts(products []catalog.Product, f ProductFilter) []catalog.Product {
	return Filter(products, func(p catalog.Product) bool {
		price := float64(p.Price)
		if price < f.MinPrice || price > f.MaxPrice {
			return false
		}
		return f.Category == "" || strings.EqualFold(p.Category, f.Category)
	})
}
