package catalog

import (
	"sort"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SortKey selects the comparator applied to the filtered list.
type SortKey string

const (
	SortByName  SortKey = "name"
	SortByPrice SortKey = "price"
	SortByStock SortKey = "stock"
)

// Criteria are the filter knobs the storefront exposes. Category and
// Supplier use the "all" sentinel for no filter; PriceFrom/PriceTo use zero
// for an unbounded side.
type Criteria struct {
	Category  string
	Search    string
	Supplier  string
	Sort      SortKey
	PriceFrom decimal.Decimal
	PriceTo   decimal.Decimal
}

// DefaultCriteria matches the storefront's initial state: everything
// visible, sorted by name.
func DefaultCriteria() Criteria {
	return Criteria{
		Category: AllFilter,
		Supplier: AllFilter,
		Sort:     SortByName,
	}
}

var nameCollator = collate.New(language.Spanish)

// Filter applies the criteria over the catalog and returns a fresh slice.
// Stage order is category, search, sort, then supplier and price range; the
// late stages only narrow, so the chosen sort order survives them.
func Filter(catalog []Product, criteria Criteria) []Product {
	filtered := make([]Product, len(catalog))
	copy(filtered, catalog)

	if criteria.Category != "" && criteria.Category != AllFilter {
		filtered = keep(filtered, func(p Product) bool {
			return p.Category == criteria.Category
		})
	}

	if criteria.Search != "" {
		query := Normalize(criteria.Search)
		filtered = keep(filtered, func(p Product) bool {
			return strings.Contains(Normalize(p.Name), query) ||
				strings.Contains(Normalize(p.SKU), query)
		})
	}

	switch criteria.Sort {
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return nameCollator.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	case SortByPrice:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].BasePrice.LessThan(filtered[j].BasePrice)
		})
	case SortByStock:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Stock > filtered[j].Stock
		})
	}

	if criteria.Supplier != "" && criteria.Supplier != AllFilter {
		filtered = keep(filtered, func(p Product) bool {
			return p.Supplier == criteria.Supplier
		})
	}

	if !criteria.PriceFrom.IsZero() || !criteria.PriceTo.IsZero() {
		filtered = keep(filtered, func(p Product) bool {
			if !criteria.PriceFrom.IsZero() && p.BasePrice.LessThan(criteria.PriceFrom) {
				return false
			}
			if !criteria.PriceTo.IsZero() && p.BasePrice.GreaterThan(criteria.PriceTo) {
				return false
			}
			return true
		})
	}

	return filtered
}

func keep(products []Product, pred func(Product) bool) []Product {
	kept := products[:0]
	for _, p := range products {
		if pred(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize lowercases and strips diacritics so "Cotización" matches
// "cotizacion" in either direction.
func Normalize(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
