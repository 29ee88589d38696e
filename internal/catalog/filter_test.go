package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testCatalog() []Product {
	return []Product{
		{ID: 1, Name: "Camiseta Básica", SKU: "TEX-CAM-001", Category: "textil", BasePrice: decimal.NewFromInt(3500), Stock: 480, Supplier: "textiles-andinos"},
		{ID: 2, Name: "Taza Cerámica", SKU: "DRK-TAZ-002", Category: "drinkware", BasePrice: decimal.NewFromInt(2990), Stock: 900, Supplier: "importadora-pacifico"},
		{ID: 3, Name: "Ánfora Decorativa", SKU: "OFI-ANF-003", Category: "oficina", BasePrice: decimal.NewFromInt(9990), Stock: 20, Supplier: "verde-austral"},
		{ID: 4, Name: "bolígrafo metálico", SKU: "OFI-BOL-004", Category: "oficina", BasePrice: decimal.NewFromInt(990), Stock: 2500, Supplier: "grafica-central"},
	}
}

func ids(products []Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterSearchIsAccentAndCaseInsensitive(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.Search = "CAMISETA"
	criteria.Sort = SortByPrice

	got := Filter(testCatalog(), criteria)
	if len(got) != 1 || got[0].Name != "Camiseta Básica" {
		t.Fatalf("expected Camiseta Básica, got %v", got)
	}

	// Accented query against unaccented normalization of the name.
	criteria.Search = "básica"
	got = Filter(testCatalog(), criteria)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("accented query should still match, got %v", got)
	}
}

func TestFilterSearchMatchesSKU(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.Search = "drk-taz"

	got := Filter(testCatalog(), criteria)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected SKU match for taza, got %v", got)
	}
}

func TestFilterCategoryAndSupplierNarrow(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.Category = "oficina"

	got := Filter(testCatalog(), criteria)
	if len(got) != 2 {
		t.Fatalf("expected two oficina products, got %v", got)
	}

	criteria.Supplier = "verde-austral"
	got = Filter(testCatalog(), criteria)
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected supplier narrowing to one product, got %v", got)
	}
}

func TestFilterSortByNameIsLocaleAware(t *testing.T) {
	criteria := DefaultCriteria()

	got := Filter(testCatalog(), criteria)
	// Spanish collation folds case and accents: Ánfora sorts before bolígrafo.
	want := []int{3, 4, 1, 2}
	gotIDs := ids(got)
	for i, id := range want {
		if gotIDs[i] != id {
			t.Fatalf("unexpected name order: got %v want %v", gotIDs, want)
		}
	}
}

func TestFilterSortByPriceAscending(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.Sort = SortByPrice

	got := Filter(testCatalog(), criteria)
	want := []int{4, 2, 1, 3}
	gotIDs := ids(got)
	for i, id := range want {
		if gotIDs[i] != id {
			t.Fatalf("unexpected price order: got %v want %v", gotIDs, want)
		}
	}
}

func TestFilterSortByStockDescending(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.Sort = SortByStock

	got := Filter(testCatalog(), criteria)
	want := []int{4, 2, 1, 3}
	gotIDs := ids(got)
	for i, id := range want {
		if gotIDs[i] != id {
			t.Fatalf("unexpected stock order: got %v want %v", gotIDs, want)
		}
	}
}

func TestFilterPriceRangeBounds(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.Sort = SortByPrice
	criteria.PriceFrom = decimal.NewFromInt(2990)
	criteria.PriceTo = decimal.NewFromInt(3500)

	got := Filter(testCatalog(), criteria)
	if gotIDs := ids(got); len(gotIDs) != 2 || gotIDs[0] != 2 || gotIDs[1] != 1 {
		t.Fatalf("inclusive range should keep 2990 and 3500 in price order, got %v", gotIDs)
	}

	// One-sided lower bound.
	criteria.PriceTo = decimal.Decimal{}
	got = Filter(testCatalog(), criteria)
	if len(got) != 3 {
		t.Fatalf("lower bound only should keep three products, got %v", ids(got))
	}

	// Both zero: no price filtering.
	criteria.PriceFrom = decimal.Decimal{}
	got = Filter(testCatalog(), criteria)
	if len(got) != 4 {
		t.Fatalf("zero bounds should keep everything, got %v", ids(got))
	}
}

func TestFilterNarrowingKeepsSortOrder(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.Sort = SortByPrice
	criteria.Supplier = AllFilter
	criteria.PriceFrom = decimal.NewFromInt(1000)

	got := Filter(testCatalog(), criteria)
	for i := 1; i < len(got); i++ {
		if got[i].BasePrice.LessThan(got[i-1].BasePrice) {
			t.Fatalf("price narrowing must not reorder: %v", ids(got))
		}
	}
}

func TestFilterDoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog()
	criteria := DefaultCriteria()
	criteria.Sort = SortByPrice
	Filter(catalog, criteria)

	if catalog[0].ID != 1 || catalog[3].ID != 4 {
		t.Fatalf("input catalog order changed: %v", ids(catalog))
	}
}

func TestNormalizeStripsDiacritics(t *testing.T) {
	if got := Normalize("Cotización ÑANDÚ"); got != "cotizacion nandu" {
		t.Fatalf("unexpected normalization %q", got)
	}
}
