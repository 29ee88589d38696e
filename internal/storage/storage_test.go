package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, err := store.Load(ctx, "shopping-cart-storage")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	blob := []byte(`{"items":[]}`)
	if err := store.Save(ctx, "shopping-cart-storage", blob); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx, "shopping-cart-storage")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(blob) {
		t.Fatalf("round trip mismatch: %s", got)
	}

	// The stored blob must be isolated from later caller mutations.
	blob[0] = 'X'
	got, _ = store.Load(ctx, "shopping-cart-storage")
	if got[0] == 'X' {
		t.Fatal("stored blob aliases the caller's slice")
	}
}

func TestSQLiteRoundTripAndOverwrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshots.db")

	store, err := NewSQLite(ctx, path, nil)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load(ctx, "quotation-storage")
	require.ErrorIs(t, err, ErrNotFound)

	first := []byte(`{"items":[],"companyInfo":{"name":"ACME"}}`)
	require.NoError(t, store.Save(ctx, "quotation-storage", first))

	second := []byte(`{"items":[],"companyInfo":{"name":"Otra"}}`)
	require.NoError(t, store.Save(ctx, "quotation-storage", second))

	got, err := store.Load(ctx, "quotation-storage")
	require.NoError(t, err)
	require.Equal(t, second, got, "save must overwrite the full snapshot")
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshots.db")

	store, err := NewSQLite(ctx, path, nil)
	require.NoError(t, err)

	blob := []byte(`{"items":[{"id":1,"quantity":2}]}`)
	require.NoError(t, store.Save(ctx, "shopping-cart-storage", blob))
	require.NoError(t, store.Close())

	reopened, err := NewSQLite(ctx, path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx, "shopping-cart-storage")
	require.NoError(t, err)
	require.Equal(t, blob, got)
}
