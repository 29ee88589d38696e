package catalog

import "github.com/shopspring/decimal"

// PriceBreak is a quantity-tier floor: the unit price applies once the
// requested quantity reaches MinQty. Discount is the advertised percentage
// and is display-only.
type PriceBreak struct {
	MinQty   int             `json:"minQty"`
	Price    decimal.Decimal `json:"price"`
	Discount *float64        `json:"discount,omitempty"`
}

// Product is an immutable catalog record.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Stock       int             `json:"stock"`
	Supplier    string          `json:"supplier"`
	Colors      []string        `json:"colors,omitempty"`
	Sizes       []string        `json:"sizes,omitempty"`
	PriceBreaks []PriceBreak    `json:"priceBreaks,omitempty"`
}

// Category is a filterable product grouping with display metadata.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// Supplier is a vendor entry with its precomputed product count.
type Supplier struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Products int    `json:"products"`
}
