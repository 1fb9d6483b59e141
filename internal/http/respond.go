package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/MiniPekkaaa/MiniApp/internal/auth"
	"github.com/MiniPekkaaa/MiniApp/internal/cart"
	"github.com/MiniPekkaaa/MiniApp/internal/order"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondServiceError converts workflow errors to HTTP status codes.
func respondServiceError(w http.ResponseWriter, err error) {
	var submitErr *order.SubmitError

	switch {
	case errors.Is(err, order.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty")
	case errors.Is(err, order.ErrSubmitInFlight):
		respondError(w, http.StatusConflict, "submission_in_progress", "a submission is already in progress")
	case errors.Is(err, order.ErrMissingOrganization):
		respondError(w, http.StatusBadRequest, "invalid_argument", "organization id is required")
	case errors.Is(err, auth.ErrNotRegistered):
		respondError(w, http.StatusUnauthorized, "not_registered", "user is not registered")
	case errors.Is(err, cart.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "not_found", "item not found in cart")
	case errors.As(err, &submitErr):
		switch submitErr.Kind {
		case order.SubmitErrRejected:
			respondError(w, http.StatusConflict, "already_exists", "order was already submitted")
		case order.SubmitErrValidation:
			respondError(w, http.StatusUnprocessableEntity, "invalid_order", submitErr.Err.Error())
		default:
			respondError(w, http.StatusServiceUnavailable, "service_unavailable", "failed to reach the order store")
		}
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
