// Package lineitems implements the shared line-item engine behind the cart
// and the quote builder: an ordered collection of product lines deduplicated
// by variant identity, with quantity-tier pricing totals.
package lineitems

import (
	"github.com/promoshopcl/promoshop-backend/internal/catalog"
	"github.com/promoshopcl/promoshop-backend/internal/pricing"
	"github.com/shopspring/decimal"
)

// Key identifies one line inside a collection. Two lines are the same iff
// product id and both variant selections match exactly; an absent color or
// size compares as the empty string, never as a wildcard.
type Key struct {
	ProductID int
	Color     string
	Size      string
}

// Item is a product line: the full catalog record plus the requested
// quantity and variant selection.
type Item struct {
	catalog.Product
	Quantity      int    `json:"quantity"`
	SelectedColor string `json:"selectedColor,omitempty"`
	SelectedSize  string `json:"selectedSize,omitempty"`
}

// Key returns the line's identity.
func (it Item) Key() Key {
	return Key{ProductID: it.ID, Color: it.SelectedColor, Size: it.SelectedSize}
}

// UnitPrice resolves the effective unit price for the line's quantity.
func (it Item) UnitPrice() pricing.Quote {
	return pricing.Resolve(it.BasePrice, it.Quantity, it.PriceBreaks)
}

// Collection is the mutable, ordered set of lines. All operations are total:
// mutating an absent line is a no-op, never an error.
type Collection struct {
	items []Item
}

// NewCollection builds a collection from previously stored lines.
func NewCollection(items []Item) Collection {
	return Collection{items: items}
}

func (c *Collection) indexOf(key Key) int {
	for i, it := range c.items {
		if it.Key() == key {
			return i
		}
	}
	return -1
}

// Add merges the product into the collection: an existing line with the same
// identity gains quantity, otherwise a new line is appended.
func (c *Collection) Add(product catalog.Product, quantity int, color, size string) {
	key := Key{ProductID: product.ID, Color: color, Size: size}
	if i := c.indexOf(key); i >= 0 {
		c.items[i].Quantity += quantity
		return
	}
	c.items = append(c.items, Item{
		Product:       product,
		Quantity:      quantity,
		SelectedColor: color,
		SelectedSize:  size,
	})
}

// Remove deletes the line with the given identity; absent lines are ignored.
func (c *Collection) Remove(key Key) {
	if i := c.indexOf(key); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// UpdateQuantity sets the line's quantity, clamping non-positive values to 1.
// Removal is a distinct action; this never drops the line.
func (c *Collection) UpdateQuantity(key Key, quantity int) {
	i := c.indexOf(key)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		quantity = 1
	}
	c.items[i].Quantity = quantity
}

// Clear empties the collection.
func (c *Collection) Clear() {
	c.items = nil
}

// Items returns a copy of the lines in insertion order.
func (c *Collection) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of distinct lines.
func (c *Collection) Len() int {
	return len(c.items)
}

// TotalItems sums the quantities across all lines.
func (c *Collection) TotalItems() int {
	var total int
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// Total sums unit price times quantity over all lines, with unit prices
// resolved against each line's tier table.
func (c *Collection) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		quote := it.UnitPrice()
		total = total.Add(quote.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
