package http

import (
	"net/http"
	"time"

	"github.com/MiniPekkaaa/MiniApp/internal/auth"
	"github.com/MiniPekkaaa/MiniApp/internal/cart"
	"github.com/MiniPekkaaa/MiniApp/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the full API surface. Health and metrics stay outside the
// auth wall; everything under /api/v1 requires a registered user.
func NewRouter(
	orders OrderWorkflow,
	carts cart.Store,
	source ProductSource,
	checker auth.Checker,
	registerURL string,
	requestTimeout time.Duration,
) http.Handler {
	orderHandler := NewOrderHandler(orders, requestTimeout)
	cartHandler := NewCartHandler(carts, source, requestTimeout)
	catalogHandler := NewCatalogHandler(source, requestTimeout)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(checker, registerURL))

		r.Get("/products", catalogHandler.ListProducts)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.ClearCart)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderHandler.CreateOrder)
			r.Get("/", orderHandler.ListOrders)
		})
	})

	return r
}
