package lineitems

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/promoshopcl/promoshop-backend/internal/catalog"
	"github.com/promoshopcl/promoshop-backend/internal/storage"
	pkgerrors "github.com/promoshopcl/promoshop-backend/pkg/errors"
	"github.com/promoshopcl/promoshop-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// StoreParams groups the dependencies for a persistent line-item store.
type StoreParams struct {
	// StorageKey is the fixed snapshot key, e.g. "shopping-cart-storage".
	StorageKey string
	Storage    storage.Store
	Logger     *logger.Logger
	// TrackCompanyInfo enables the quote builder's customer sub-state.
	TrackCompanyInfo bool
}

// Store is a line-item collection bound to a durable snapshot key. Every
// mutation rewrites the full snapshot before returning; operations serialize
// on an internal lock so each action, including its persistence write, runs
// to completion before the next one starts.
type Store struct {
	mu sync.Mutex

	key          string
	storage      storage.Store
	logg         *logger.Logger
	trackCompany bool

	collection Collection
	company    CompanyInfo
}

// NewStore builds the store and hydrates it from durable storage. A missing
// or unreadable snapshot falls back to empty defaults rather than failing.
func NewStore(ctx context.Context, params StoreParams) (*Store, error) {
	if params.StorageKey == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "storage key is required")
	}
	if params.Storage == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "storage backend is required")
	}

	s := &Store{
		key:          params.StorageKey,
		storage:      params.Storage,
		logg:         params.Logger,
		trackCompany: params.TrackCompanyInfo,
	}
	s.hydrate(ctx)
	return s, nil
}

func (s *Store) hydrate(ctx context.Context) {
	blob, err := s.storage.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) && s.logg != nil {
			ctx = s.logg.WithStorageKey(ctx, s.key)
			s.logg.Warn(ctx, "snapshot unreadable, starting empty")
		}
		return
	}

	var snap Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		if s.logg != nil {
			ctx = s.logg.WithStorageKey(ctx, s.key)
			s.logg.Warn(ctx, "snapshot corrupt, starting empty")
		}
		return
	}

	s.collection = NewCollection(snap.Items)
	if s.trackCompany && snap.CompanyInfo != nil {
		s.company = *snap.CompanyInfo
	}
}

func (s *Store) persist(ctx context.Context) error {
	snap := Snapshot{Items: s.collection.Items()}
	if snap.Items == nil {
		snap.Items = []Item{}
	}
	if s.trackCompany {
		company := s.company
		snap.CompanyInfo = &company
	}

	blob, err := json.Marshal(snap)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding snapshot")
	}
	if err := s.storage.Save(ctx, s.key, blob); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting snapshot")
	}
	return nil
}

// AddItem merges the product into the collection and persists.
func (s *Store) AddItem(ctx context.Context, product catalog.Product, quantity int, color, size string) error {
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collection.Add(product, quantity, color, size)
	return s.persist(ctx)
}

// RemoveItem deletes the matching line and persists. Removing an absent line
// is a no-op by policy, not an error.
func (s *Store) RemoveItem(ctx context.Context, productID int, color, size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collection.Remove(Key{ProductID: productID, Color: color, Size: size})
	return s.persist(ctx)
}

// UpdateItemQuantity sets the matching line's quantity (clamped to >= 1)
// and persists. Updating an absent line is a no-op.
func (s *Store) UpdateItemQuantity(ctx context.Context, productID, quantity int, color, size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collection.UpdateQuantity(Key{ProductID: productID, Color: color, Size: size}, quantity)
	return s.persist(ctx)
}

// Clear empties the collection, resets company info to its defaults when
// tracked, and persists.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collection.Clear()
	s.company = CompanyInfo{}
	return s.persist(ctx)
}

// SetCompanyField updates one customer field by key and persists. Values
// are free text and deliberately unvalidated.
func (s *Store) SetCompanyField(ctx context.Context, field, value string) error {
	if !s.trackCompany {
		return pkgerrors.New(pkgerrors.CodeValidation, "store does not track company info")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case CompanyFieldName:
		s.company.Name = value
	case CompanyFieldRUT:
		s.company.RUT = value
	case CompanyFieldAddress:
		s.company.Address = value
	case CompanyFieldPhone:
		s.company.Phone = value
	case CompanyFieldEmail:
		s.company.Email = value
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown company field").
			WithDetails(map[string]string{"field": field})
	}
	return s.persist(ctx)
}

// Items returns the lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.Items()
}

// CompanyInfo returns the current customer record.
func (s *Store) CompanyInfo() CompanyInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.company
}

// TotalItems sums quantities across all lines; derived, never stored.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.TotalItems()
}

// Total is the tier-priced sum over all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.Total()
}
