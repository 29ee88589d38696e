// Package cart exposes the shopping cart: a persistent line-item store under
// the fixed "shopping-cart-storage" snapshot key.
package cart

import (
	"context"

	"github.com/promoshopcl/promoshop-backend/internal/catalog"
	"github.com/promoshopcl/promoshop-backend/internal/lineitems"
	"github.com/promoshopcl/promoshop-backend/internal/storage"
	pkgerrors "github.com/promoshopcl/promoshop-backend/pkg/errors"
	"github.com/promoshopcl/promoshop-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// StorageKey is the cart's durable snapshot key.
const StorageKey = "shopping-cart-storage"

// ProductLookup resolves catalog products when lines are added.
type ProductLookup interface {
	ProductByID(id int) (catalog.Product, bool)
}

// Service is the cart's operation surface.
type Service interface {
	AddItem(ctx context.Context, productID, quantity int, color, size string) error
	RemoveItem(ctx context.Context, productID int, color, size string) error
	UpdateItemQuantity(ctx context.Context, productID, quantity int, color, size string) error
	Clear(ctx context.Context) error
	Items() []lineitems.Item
	TotalItems() int
	Total() decimal.Decimal
}

// ServiceParams groups the cart dependencies.
type ServiceParams struct {
	Catalog ProductLookup
	Storage storage.Store
	Logger  *logger.Logger
}

type service struct {
	catalog ProductLookup
	store   *lineitems.Store
}

// NewService hydrates the cart from durable storage and returns it.
func NewService(ctx context.Context, params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog lookup is required")
	}
	store, err := lineitems.NewStore(ctx, lineitems.StoreParams{
		StorageKey: StorageKey,
		Storage:    params.Storage,
		Logger:     params.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &service{catalog: params.Catalog, store: store}, nil
}

func (s *service) AddItem(ctx context.Context, productID, quantity int, color, size string) error {
	product, ok := s.catalog.ProductByID(productID)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return s.store.AddItem(ctx, product, quantity, color, size)
}

func (s *service) RemoveItem(ctx context.Context, productID int, color, size string) error {
	return s.store.RemoveItem(ctx, productID, color, size)
}

func (s *service) UpdateItemQuantity(ctx context.Context, productID, quantity int, color, size string) error {
	return s.store.UpdateItemQuantity(ctx, productID, quantity, color, size)
}

func (s *service) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *service) Items() []lineitems.Item {
	return s.store.Items()
}

func (s *service) TotalItems() int {
	return s.store.TotalItems()
}

func (s *service) Total() decimal.Decimal {
	return s.store.Total()
}
