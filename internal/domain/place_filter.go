package domain

import "strings"

const (
	DefaultFilterPriceMin int64 = 0
	DefaultFilterPriceMax int64 = 1000
)

// PlaceFilter holds the category, price and rating criteria a place must meet.
// Empty Categories or Ratings place no constraint on that field.
type PlaceFilter struct {
	Categories []PlaceCategory
	PriceMin   int64
	PriceMax   int64
	Ratings    []float64
}

func NewPlaceFilter() PlaceFilter {
	return PlaceFilter{
		PriceMin: DefaultFilterPriceMin,
		PriceMax: DefaultFilterPriceMax,
	}
}

// MinRating reports the lowest requested rating, the only one that constrains results.
func (f PlaceFilter) MinRating() (float64, bool) {
	if len(f.Ratings) == 0 {
		return 0, false
	}
	min := f.Ratings[0]
	for _, r := range f.Ratings[1:] {
		if r < min {
			min = r
		}
	}
	return min, true
}

func (f PlaceFilter) Matches(p Place) bool {
	if len(f.Categories) > 0 && !containsCategory(f.Categories, p.Category) {
		return false
	}
	if p.Price < f.PriceMin || p.Price > f.PriceMax {
		return false
	}
	if min, ok := f.MinRating(); ok && p.Rating < min {
		return false
	}
	return true
}

func containsCategory(categories []PlaceCategory, c PlaceCategory) bool {
	for _, candidate := range categories {
		if candidate == c {
			return true
		}
	}
	return false
}

// RegionQuery narrows places by region substrings. Each non-empty term must match
// independently (AND), compared case-insensitively.
type RegionQuery struct {
	From string
	To   string
}

func (q RegionQuery) Terms() []string {
	terms := make([]string, 0, 2)
	for _, t := range []string{q.From, q.To} {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			terms = append(terms, trimmed)
		}
	}
	return terms
}

func (q RegionQuery) Matches(p Place) bool {
	terms := q.Terms()
	if len(terms) == 0 {
		return true
	}
	if p.Region == nil {
		return false
	}
	region := strings.ToLower(*p.Region)
	for _, term := range terms {
		if !strings.Contains(region, strings.ToLower(term)) {
			return false
		}
	}
	return true
}
