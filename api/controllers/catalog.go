package controllers

import (
	"net/http"
	"strings"

	"github.com/promoshopcl/promoshop-backend/api/responses"
	"github.com/promoshopcl/promoshop-backend/api/validators"
	"github.com/promoshopcl/promoshop-backend/internal/catalog"
	pkgerrors "github.com/promoshopcl/promoshop-backend/pkg/errors"
	"github.com/promoshopcl/promoshop-backend/pkg/logger"
)

// CatalogService is the read surface the catalog handlers need.
type CatalogService interface {
	Products() []catalog.Product
	Categories() []catalog.Category
	Suppliers() []catalog.Supplier
}

// CatalogProducts lists products after applying the query-string filters:
// category, search, supplier, sort, priceFrom and priceTo.
func CatalogProducts(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		criteria, err := criteriaFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := catalog.Filter(svc.Products(), criteria)
		responses.WriteSuccess(w, map[string]any{
			"products": products,
			"total":    len(products),
		})
	}
}

func CatalogCategories(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Categories())
	}
}

func CatalogSuppliers(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Suppliers())
	}
}

func criteriaFromQuery(r *http.Request) (catalog.Criteria, error) {
	criteria := catalog.DefaultCriteria()
	query := r.URL.Query()

	if category := strings.TrimSpace(query.Get("category")); category != "" {
		criteria.Category = category
	}
	if supplier := strings.TrimSpace(query.Get("supplier")); supplier != "" {
		criteria.Supplier = supplier
	}
	criteria.Search = strings.TrimSpace(query.Get("search"))

	if raw := strings.TrimSpace(query.Get("sort")); raw != "" {
		switch key := catalog.SortKey(raw); key {
		case catalog.SortByName, catalog.SortByPrice, catalog.SortByStock:
			criteria.Sort = key
		default:
			return catalog.Criteria{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown sort key").
				WithDetails(map[string]any{"field": "sort", "value": raw})
		}
	}

	from, err := validators.ParseQueryDecimal(r, "priceFrom")
	if err != nil {
		return catalog.Criteria{}, err
	}
	to, err := validators.ParseQueryDecimal(r, "priceTo")
	if err != nil {
		return catalog.Criteria{}, err
	}
	if !from.IsZero() && !to.IsZero() && to.LessThan(from) {
		return catalog.Criteria{}, pkgerrors.New(pkgerrors.CodeValidation, "price range is inverted").
			WithDetails(map[string]any{"priceFrom": from.String(), "priceTo": to.String()})
	}
	criteria.PriceFrom = from
	criteria.PriceTo = to

	return criteria, nil
}
