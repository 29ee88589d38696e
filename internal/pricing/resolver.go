// Package pricing resolves the effective unit price for a quantity against a
// product's volume-tier table.
package pricing

import (
	"sort"

	"github.com/promoshopcl/promoshop-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// Quote is the resolved price for one line. Discount is nil when the base
// price applies.
type Quote struct {
	UnitPrice decimal.Decimal
	Discount  *float64
}

// Resolve picks the applicable price break for the requested quantity.
// Tiers are monotonic floors: the break with the largest MinQty not
// exceeding the quantity wins. With no breaks, or a quantity below every
// break, the base price applies and no discount is reported. Callers
// guarantee quantity >= 1.
func Resolve(basePrice decimal.Decimal, quantity int, breaks []catalog.PriceBreak) Quote {
	if len(breaks) == 0 {
		return Quote{UnitPrice: basePrice}
	}

	sorted := make([]catalog.PriceBreak, len(breaks))
	copy(sorted, breaks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinQty > sorted[j].MinQty
	})

	for _, br := range sorted {
		if quantity >= br.MinQty {
			return Quote{UnitPrice: br.Price, Discount: br.Discount}
		}
	}

	return Quote{UnitPrice: basePrice}
}
