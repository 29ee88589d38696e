package controllers

import (
	"net/http"

	"github.com/promoshopcl/promoshop-backend/api/responses"
	"github.com/promoshopcl/promoshop-backend/api/validators"
	cartsvc "github.com/promoshopcl/promoshop-backend/internal/cart"
	"github.com/promoshopcl/promoshop-backend/internal/lineitems"
	pkgerrors "github.com/promoshopcl/promoshop-backend/pkg/errors"
	"github.com/promoshopcl/promoshop-backend/pkg/logger"
	"github.com/promoshopcl/promoshop-backend/pkg/money"
)

type addItemRequest struct {
	ProductID int    `json:"productId" validate:"required,min=1"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

type updateQuantityRequest struct {
	ProductID int    `json:"productId" validate:"required,min=1"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

type removeItemRequest struct {
	ProductID int    `json:"productId" validate:"required,min=1"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

type lineItemsView struct {
	Items          []lineitems.Item `json:"items"`
	TotalItems     int              `json:"totalItems"`
	Total          string           `json:"total"`
	FormattedTotal string           `json:"formattedTotal"`
}

func newCartView(svc cartsvc.Service) lineItemsView {
	total := svc.Total()
	return lineItemsView{
		Items:          svc.Items(),
		TotalItems:     svc.TotalItems(),
		Total:          total.String(),
		FormattedTotal: money.FormatCLP(total),
	}
}

// CartFetch returns the cart's lines and totals.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartView(svc))
	}
}

// CartAddItem adds a product variant to the cart, merging quantities when the
// same variant is already present.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.AddItem(r.Context(), payload.ProductID, payload.Quantity, payload.Color, payload.Size); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newCartView(svc))
	}
}

// CartUpdateQuantity sets a line's quantity. Values below one clamp to one.
func CartUpdateQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateItemQuantity(r.Context(), payload.ProductID, payload.Quantity, payload.Color, payload.Size); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(svc))
	}
}

// CartRemoveItem drops one product variant from the cart.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload removeItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.RemoveItem(r.Context(), payload.ProductID, payload.Color, payload.Size); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(svc))
	}
}

// CartClear empties the cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		if err := svc.Clear(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(svc))
	}
}
