package transport

import (
	"errors"
	"net/http"
	"strconv"

	"layers-storefront/internal/catalog"
	"layers-storefront/internal/domain"
	"layers-storefront/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductListResponse is a catalog slice with the filter that produced it
type ProductListResponse struct {
	Filter   catalog.Filter   `json:"filter"`
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

// CatalogHandler serves read-only catalog queries
type CatalogHandler struct {
	store  catalog.Store
	logger *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(store catalog.Store, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		store:  store,
		logger: logger,
	}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/catalog", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Get("/products/{id}/related", h.RelatedProducts)
	})
}

// ListProducts handles GET /api/catalog/products?category=
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := catalog.ParseFilter(r.URL.Query().Get("category"))
	if err != nil {
		middleware.RespondWithRequestError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	products := h.store.ByCategory(filter)
	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Filter:   filter,
		Products: products,
		Count:    len(products),
	})
}

// GetProduct handles GET /api/catalog/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productFromPath(w, r)
	if !ok {
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// RelatedProducts handles GET /api/catalog/products/{id}/related?limit=
func (h *CatalogHandler) RelatedProducts(w http.ResponseWriter, r *http.Request) {
	limit := catalog.DefaultRelatedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			middleware.RespondWithRequestError(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	product, ok := h.productFromPath(w, r)
	if !ok {
		return
	}

	related := h.store.RelatedTo(product, limit)
	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Filter:   catalog.Filter(product.Category),
		Products: related,
		Count:    len(related),
	})
}

func (h *CatalogHandler) productFromPath(w http.ResponseWriter, r *http.Request) (domain.Product, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithRequestError(w, r, http.StatusBadRequest, "invalid product id")
		return domain.Product{}, false
	}

	product, err := h.store.ByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			middleware.RespondWithRequestError(w, r, http.StatusNotFound, "product not found")
			return domain.Product{}, false
		}
		h.logger.Error("Failed to load product", zap.Int("product_id", id), zap.Error(err))
		middleware.RespondWithRequestError(w, r, http.StatusInternalServerError, "failed to load product")
		return domain.Product{}, false
	}

	return product, true
}
