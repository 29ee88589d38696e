package pricing

import (
	"testing"

	"github.com/promoshopcl/promoshop-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

func pct(v float64) *float64 { return &v }

func sampleBreaks() []catalog.PriceBreak {
	return []catalog.PriceBreak{
		{MinQty: 10, Price: decimal.NewFromInt(900), Discount: pct(10)},
		{MinQty: 50, Price: decimal.NewFromInt(800), Discount: pct(20)},
	}
}

func TestResolveTierFloors(t *testing.T) {
	base := decimal.NewFromInt(1000)

	tests := []struct {
		qty          int
		wantPrice    int64
		wantDiscount bool
	}{
		{qty: 5, wantPrice: 1000, wantDiscount: false},
		{qty: 9, wantPrice: 1000, wantDiscount: false},
		{qty: 10, wantPrice: 900, wantDiscount: true},
		{qty: 49, wantPrice: 900, wantDiscount: true},
		{qty: 50, wantPrice: 800, wantDiscount: true},
		{qty: 5000, wantPrice: 800, wantDiscount: true},
	}

	for _, tt := range tests {
		got := Resolve(base, tt.qty, sampleBreaks())
		if !got.UnitPrice.Equal(decimal.NewFromInt(tt.wantPrice)) {
			t.Fatalf("qty %d: unit price %s, want %d", tt.qty, got.UnitPrice, tt.wantPrice)
		}
		if (got.Discount != nil) != tt.wantDiscount {
			t.Fatalf("qty %d: discount presence %v, want %v", tt.qty, got.Discount != nil, tt.wantDiscount)
		}
	}
}

func TestResolveNoBreaksUsesBasePrice(t *testing.T) {
	base := decimal.NewFromInt(2990)

	got := Resolve(base, 100, nil)
	if !got.UnitPrice.Equal(base) {
		t.Fatalf("expected base price, got %s", got.UnitPrice)
	}
	if got.Discount != nil {
		t.Fatalf("expected no discount, got %v", *got.Discount)
	}
}

func TestResolveDoesNotReorderCallerBreaks(t *testing.T) {
	breaks := sampleBreaks()
	Resolve(decimal.NewFromInt(1000), 60, breaks)

	if breaks[0].MinQty != 10 || breaks[1].MinQty != 50 {
		t.Fatalf("caller's break slice was reordered: %v", breaks)
	}
}

func TestResolveIsMonotonic(t *testing.T) {
	base := decimal.NewFromInt(1000)
	breaks := []catalog.PriceBreak{
		{MinQty: 5, Price: decimal.NewFromInt(950)},
		{MinQty: 20, Price: decimal.NewFromInt(870)},
		{MinQty: 100, Price: decimal.NewFromInt(700)},
	}

	prev := Resolve(base, 1, breaks).UnitPrice
	for qty := 2; qty <= 200; qty++ {
		cur := Resolve(base, qty, breaks).UnitPrice
		if cur.GreaterThan(prev) {
			t.Fatalf("unit price increased from %s to %s at qty %d", prev, cur, qty)
		}
		prev = cur
	}
}
