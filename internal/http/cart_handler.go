package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/MiniPekkaaa/MiniApp/internal/cart"
	"github.com/MiniPekkaaa/MiniApp/internal/catalog"
	"github.com/MiniPekkaaa/MiniApp/internal/domain"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	carts   cart.Store
	catalog ProductSource
	timeout time.Duration
}

// ProductSource resolves product ids to catalog data when a line is added.
type ProductSource interface {
	Products(ctx context.Context) ([]domain.Product, error)
}

var _ ProductSource = (*catalog.Client)(nil)

func NewCartHandler(carts cart.Store, source ProductSource, timeout time.Duration) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: source,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	profile := profileFromContext(r.Context())
	if profile == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	product, err := h.findProduct(ctx, req.ProductID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if product == nil {
		respondError(w, http.StatusNotFound, "not_found", "unknown product")
		return
	}

	line := domain.CartLine{
		ProductID:   product.ID,
		Name:        product.Name,
		LegalEntity: product.LegalEntity,
		Quantity:    req.Quantity,
	}
	if err := h.carts.Add(ctx, profile.ChatID, line); err != nil {
		respondServiceError(w, err)
		return
	}

	lines, err := h.carts.List(ctx, profile.ChatID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, lines)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	profile := profileFromContext(r.Context())
	if profile == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	lines, err := h.carts.List(ctx, profile.ChatID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}

	respondJSON(w, http.StatusOK, lines)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	profile := profileFromContext(r.Context())
	if profile == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	productIDStr := chi.URLParam(r, "product_id")
	productID, err := strconv.ParseInt(productIDStr, 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	if err := h.carts.Remove(ctx, profile.ChatID, productID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	profile := profileFromContext(r.Context())
	if profile == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	if err := h.carts.Clear(ctx, profile.ChatID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (h *CartHandler) findProduct(ctx context.Context, id int64) (*domain.Product, error) {
	products, err := h.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}
