// Package catalog holds the in-memory product filter/sort pipeline.
// The full product list is fetched once; all narrowing happens here.
package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"handmadehaven/internal/domain"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

const (
	// CategoryAll disables the category stage.
	CategoryAll = "All"

	MinPrice = 0.0
	MaxPrice = 100000.0
)

// FilterState captures every user-adjustable narrowing input. The zero
// value is not meaningful; start from Default().
type FilterState struct {
	Query    string
	Category string
	PriceMin float64
	PriceMax float64
	Sort     SortKey
}

func Default() FilterState {
	return FilterState{
		Query:    "",
		Category: CategoryAll,
		PriceMin: MinPrice,
		PriceMax: MaxPrice,
		Sort:     SortNewest,
	}
}

// Clear is the atomic reset back to the all-pass filter.
func (f FilterState) Clear() FilterState { return Default() }

// IsActive reports whether any stage would drop a product, i.e. whether
// a "clear filters" affordance is worth showing.
func (f FilterState) IsActive() bool {
	return f.Query != "" ||
		f.Category != CategoryAll ||
		f.PriceMin > MinPrice ||
		f.PriceMax < MaxPrice
}

// Parse derives a FilterState from raw query-string values. Absent or
// unrecognized values fall back to the defaults, so a shared URL with a
// stale category degrades to "All" instead of erroring.
func Parse(query, category, min, max, sortBy string) FilterState {
	f := Default()
	f.Query = strings.TrimSpace(query)
	if domain.IsCategory(strings.TrimSpace(category)) {
		f.Category = strings.TrimSpace(category)
	}
	if v, err := strconv.ParseFloat(min, 64); err == nil && v > MinPrice {
		f.PriceMin = v
	}
	if v, err := strconv.ParseFloat(max, 64); err == nil && v < MaxPrice && v >= 0 {
		f.PriceMax = v
	}
	switch SortKey(sortBy) {
	case SortNewest, SortPriceLow, SortPriceHigh, SortRating:
		f.Sort = SortKey(sortBy)
	}
	return f
}

// ShareQuery mirrors the category selection into the shareable URL
// surface: set when a real category is picked, removed on "All". Only
// the category dimension is shared.
func (f FilterState) ShareQuery() string {
	if f.Category == CategoryAll {
		return ""
	}
	v := url.Values{}
	v.Set("category", f.Category)
	return v.Encode()
}

// Apply runs the full pipeline over an already-fetched product list and
// returns a new ordered slice. It is pure and total: the input is never
// mutated and no combination of inputs fails.
func (f FilterState) Apply(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	q := strings.ToLower(f.Query)
	for _, p := range products {
		if q != "" && !matchText(p, q) {
			continue
		}
		if f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		if p.Price < f.PriceMin || p.Price > f.PriceMax {
			continue
		}
		out = append(out, p)
	}

	// Stable sort keeps ties in filtered order.
	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].RatingOrZero() > out[j].RatingOrZero() })
	default: // newest; RFC3339 timestamps compare lexicographically
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	}
	return out
}

func matchText(p domain.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}
