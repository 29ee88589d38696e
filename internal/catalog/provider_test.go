package catalog

import "testing"

func TestNewDefaultProviderComputesCounts(t *testing.T) {
	p := NewDefaultProvider()

	if len(p.Products()) == 0 {
		t.Fatal("expected built-in catalog to have products")
	}

	var all, summed int
	for _, c := range p.Categories() {
		if c.ID == AllFilter {
			all = c.Count
			continue
		}
		summed += c.Count
	}
	if all != len(p.Products()) {
		t.Fatalf("'all' category should count the whole catalog, got %d", all)
	}
	if summed != len(p.Products()) {
		t.Fatalf("category counts should add up to the catalog size, got %d", summed)
	}

	for _, s := range p.Suppliers() {
		if s.ID == AllFilter && s.Products != len(p.Products()) {
			t.Fatalf("'all' supplier should count the whole catalog, got %d", s.Products)
		}
	}
}

func TestProviderProductByID(t *testing.T) {
	p := NewDefaultProvider()

	product, ok := p.ProductByID(1)
	if !ok {
		t.Fatal("expected product 1 to exist")
	}
	if product.Name != "Camiseta Básica" {
		t.Fatalf("unexpected product %q", product.Name)
	}

	if _, ok := p.ProductByID(99999); ok {
		t.Fatal("expected missing id to report !ok")
	}
}
