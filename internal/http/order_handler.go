package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/MiniPekkaaa/MiniApp/internal/auth"
	"github.com/MiniPekkaaa/MiniApp/internal/domain"
)

// OrderWorkflow is the slice of the order service the handlers need.
type OrderWorkflow interface {
	Submit(ctx context.Context, user *auth.Profile) (string, error)
	RecentOrders(ctx context.Context, organizationID string, limit int64) ([]domain.OrderSummary, error)
}

type OrderHandler struct {
	orders  OrderWorkflow
	timeout time.Duration
}

func NewOrderHandler(orders OrderWorkflow, timeout time.Duration) *OrderHandler {
	return &OrderHandler{
		orders:  orders,
		timeout: timeout,
	}
}

type CreateOrderResponseDTO struct {
	OrderID string `json:"order_id"`
}

// CreateOrder submits the user's current cart as one order.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	profile := profileFromContext(r.Context())
	if profile == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	orderID, err := h.orders.Submit(ctx, profile)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CreateOrderResponseDTO{OrderID: orderID})
}

// ListOrders returns the recent order summaries for the user's organization.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	profile := profileFromContext(r.Context())
	if profile == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	limit := int64(0)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	summaries, err := h.orders.RecentOrders(ctx, profile.OrganizationID, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summaries)
}
