package http

import (
	"context"
	"net/http"
	"time"
)

type CatalogHandler struct {
	catalog ProductSource
	timeout time.Duration
}

func NewCatalogHandler(source ProductSource, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		catalog: source,
		timeout: timeout,
	}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.Products(ctx)
	if err != nil {
		respondError(w, http.StatusBadGateway, "catalog_unavailable", "failed to fetch product catalog")
		return
	}

	respondJSON(w, http.StatusOK, products)
}
