package lineitems

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/promoshopcl/promoshop-backend/internal/storage"
	"github.com/shopspring/decimal"
)

func newCartStore(t *testing.T, backend storage.Store) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), StoreParams{
		StorageKey: "shopping-cart-storage",
		Storage:    backend,
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func newQuoteStore(t *testing.T, backend storage.Store) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), StoreParams{
		StorageKey:       "quotation-storage",
		Storage:          backend,
		TrackCompanyInfo: true,
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestNewStoreRequiresKeyAndBackend(t *testing.T) {
	if _, err := NewStore(context.Background(), StoreParams{Storage: storage.NewMemory()}); err == nil {
		t.Fatal("expected error without storage key")
	}
	if _, err := NewStore(context.Background(), StoreParams{StorageKey: "k"}); err == nil {
		t.Fatal("expected error without storage backend")
	}
}

func TestStorePersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	store := newCartStore(t, backend)

	if err := store.AddItem(ctx, tshirt(), 3, "negro", "M"); err != nil {
		t.Fatalf("add: %v", err)
	}

	blob, err := backend.Load(ctx, "shopping-cart-storage")
	if err != nil {
		t.Fatalf("load blob: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		t.Fatalf("decode blob: %v", err)
	}
	if len(snap.Items) != 1 || snap.Items[0].Quantity != 3 {
		t.Fatalf("unexpected persisted snapshot: %+v", snap)
	}
	if snap.CompanyInfo != nil {
		t.Fatal("cart snapshot must not carry company info")
	}
}

func TestStoreReloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()

	store := newQuoteStore(t, backend)
	if err := store.AddItem(ctx, tshirt(), 10, "blanco", "S"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.AddItem(ctx, mug(), 2, "", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.SetCompanyField(ctx, CompanyFieldName, "Comercial Austral SpA"); err != nil {
		t.Fatalf("set company: %v", err)
	}
	if err := store.SetCompanyField(ctx, CompanyFieldRUT, "76.543.210-K"); err != nil {
		t.Fatalf("set company: %v", err)
	}

	reloaded := newQuoteStore(t, backend)

	if got, want := reloaded.TotalItems(), store.TotalItems(); got != want {
		t.Fatalf("reloaded total items %d, want %d", got, want)
	}
	if got, want := reloaded.Total(), store.Total(); !got.Equal(want) {
		t.Fatalf("reloaded total %s, want %s", got, want)
	}
	if got := reloaded.CompanyInfo(); got.Name != "Comercial Austral SpA" || got.RUT != "76.543.210-K" {
		t.Fatalf("company info did not survive reload: %+v", got)
	}

	items := reloaded.Items()
	if len(items) != 2 || items[0].SelectedColor != "blanco" || items[0].SelectedSize != "S" {
		t.Fatalf("items did not survive reload: %+v", items)
	}
}

func TestStoreCorruptSnapshotFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	if err := backend.Save(ctx, "shopping-cart-storage", []byte("{not json")); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	store := newCartStore(t, backend)
	if store.TotalItems() != 0 || len(store.Items()) != 0 {
		t.Fatal("corrupt snapshot must hydrate to empty state")
	}
}

func TestStoreAddRejectsNonPositiveQuantity(t *testing.T) {
	store := newCartStore(t, storage.NewMemory())
	if err := store.AddItem(context.Background(), tshirt(), 0, "", ""); err == nil {
		t.Fatal("expected validation error for quantity 0")
	}
}

func TestQuoteClearResetsItemsAndCompanyInfo(t *testing.T) {
	ctx := context.Background()
	store := newQuoteStore(t, storage.NewMemory())

	if err := store.AddItem(ctx, tshirt(), 5, "", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	for field, value := range map[string]string{
		CompanyFieldName:    "ACME Ltda",
		CompanyFieldRUT:     "77.111.222-3",
		CompanyFieldAddress: "Av. Providencia 1234",
		CompanyFieldPhone:   "+56 9 8765 4321",
		CompanyFieldEmail:   "compras@acme.cl",
	} {
		if err := store.SetCompanyField(ctx, field, value); err != nil {
			t.Fatalf("set %s: %v", field, err)
		}
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if len(store.Items()) != 0 {
		t.Fatal("clear must empty items")
	}
	if got := store.CompanyInfo(); got != (CompanyInfo{}) {
		t.Fatalf("clear must reset every company field, got %+v", got)
	}
	if !store.Total().Equal(decimal.Zero) {
		t.Fatalf("cleared total must be zero, got %s", store.Total())
	}
}

func TestSetCompanyFieldValidation(t *testing.T) {
	ctx := context.Background()

	cart := newCartStore(t, storage.NewMemory())
	if err := cart.SetCompanyField(ctx, CompanyFieldName, "x"); err == nil {
		t.Fatal("cart store must reject company info updates")
	}

	quote := newQuoteStore(t, storage.NewMemory())
	if err := quote.SetCompanyField(ctx, "fax", "123"); err == nil {
		t.Fatal("unknown field must be rejected")
	}
}
