package controllers

import (
	"net/http"

	"github.com/promoshopcl/promoshop-backend/api/responses"
	"github.com/promoshopcl/promoshop-backend/api/validators"
	"github.com/promoshopcl/promoshop-backend/internal/lineitems"
	quotesvc "github.com/promoshopcl/promoshop-backend/internal/quote"
	pkgerrors "github.com/promoshopcl/promoshop-backend/pkg/errors"
	"github.com/promoshopcl/promoshop-backend/pkg/logger"
	"github.com/promoshopcl/promoshop-backend/pkg/money"
)

type companyFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type quoteView struct {
	Items          []lineitems.Item      `json:"items"`
	CompanyInfo    lineitems.CompanyInfo `json:"companyInfo"`
	TotalItems     int                   `json:"totalItems"`
	Total          string                `json:"total"`
	FormattedTotal string                `json:"formattedTotal"`
}

func newQuoteView(svc quotesvc.Service) quoteView {
	total := svc.Total()
	return quoteView{
		Items:          svc.Items(),
		CompanyInfo:    svc.CompanyInfo(),
		TotalItems:     svc.TotalItems(),
		Total:          total.String(),
		FormattedTotal: money.FormatCLP(total),
	}
}

// QuoteFetch returns the quote's lines, customer record and totals.
func QuoteFetch(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}
		responses.WriteSuccess(w, newQuoteView(svc))
	}
}

// QuoteAddItem adds a product variant to the quote.
func QuoteAddItem(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
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

		responses.WriteSuccessStatus(w, http.StatusCreated, newQuoteView(svc))
	}
}

// QuoteUpdateQuantity sets a line's quantity. Values below one clamp to one.
func QuoteUpdateQuantity(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
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

		responses.WriteSuccess(w, newQuoteView(svc))
	}
}

// QuoteRemoveItem drops one product variant from the quote.
func QuoteRemoveItem(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
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

		responses.WriteSuccess(w, newQuoteView(svc))
	}
}

// QuoteClear empties the quote and resets the customer record.
func QuoteClear(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		if err := svc.Clear(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newQuoteView(svc))
	}
}

// QuoteSetCompanyField updates one field of the quote's customer record.
func QuoteSetCompanyField(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		var payload companyFieldRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SetCompanyField(r.Context(), payload.Field, payload.Value); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newQuoteView(svc))
	}
}

// QuoteDocument renders the printable quotation as HTML.
func QuoteDocument(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		doc, err := svc.Document()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(doc)
	}
}
