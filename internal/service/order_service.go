package service

import (
	"context"
	"errors"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/MiniPekkaaa/MiniApp/internal/auth"
	"github.com/MiniPekkaaa/MiniApp/internal/cart"
	"github.com/MiniPekkaaa/MiniApp/internal/domain"
	"github.com/MiniPekkaaa/MiniApp/internal/metrics"
	"github.com/MiniPekkaaa/MiniApp/internal/notify"
	"github.com/MiniPekkaaa/MiniApp/internal/order"
	"github.com/MiniPekkaaa/MiniApp/internal/repository"
)

const defaultHistoryLimit = 5

type OrderService struct {
	carts    cart.Store
	repo     repository.OrderRepository
	notifier notify.Notifier
	metrics  *metrics.Metrics

	mu       sync.Mutex
	inFlight map[string]struct{}      // chat ids with a submission outstanding
	pending  map[string]*domain.Order // built but not yet persisted orders
}

func NewOrderService(carts cart.Store, repo repository.OrderRepository, notifier notify.Notifier, m *metrics.Metrics) *OrderService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &OrderService{
		carts:    carts,
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		inFlight: make(map[string]struct{}),
		pending:  make(map[string]*domain.Order),
	}
}

// Submit consolidates the user's cart into one order and persists it exactly
// once. The cart is cleared only after a successful insert; on any failure it
// stays intact so the user can retry. A retry over an unchanged cart reuses
// the previously built order, id included, so the store's unique-id
// constraint catches an insert whose acknowledgement was lost. A second
// Submit for the same user while one is outstanding is rejected.
func (s *OrderService) Submit(ctx context.Context, user *auth.Profile) (string, error) {
	if !s.begin(user.ChatID) {
		return "", order.ErrSubmitInFlight
	}
	defer s.end(user.ChatID)

	lines, err := s.carts.List(ctx, user.ChatID)
	if err != nil {
		return "", s.fail(order.NewSubmitError(order.SubmitErrConnection, err))
	}

	built, err := order.Build(lines, user.ChatID, user.Organization, user.OrganizationID)
	if err != nil {
		return "", err
	}
	built = s.resumePending(user.ChatID, built)

	if err := order.Validate(built); err != nil {
		return "", s.fail(order.NewSubmitError(order.SubmitErrValidation, err))
	}

	if err := s.repo.Insert(ctx, built); err != nil {
		return "", s.fail(submitError(err))
	}

	if s.metrics != nil {
		s.metrics.OrdersSubmitted.Inc()
	}

	// Best effort from here on: the order is persisted, so a stale cart or a
	// missed notification must not surface as a submission failure.
	s.forgetPending(user.ChatID)
	s.clearCart(user.ChatID)

	if err := s.notifier.OrderCreated(ctx, user.ChatID, built); err != nil {
		log.Printf("order notification failed: %v", err)
	}

	return built.ID, nil
}

// RecentOrders returns the organization's latest orders projected for the
// history view. An organization with no orders gets an empty slice.
func (s *OrderService) RecentOrders(ctx context.Context, organizationID string, limit int64) ([]domain.OrderSummary, error) {
	if organizationID == "" {
		return nil, order.ErrMissingOrganization
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	orders, err := s.repo.RecentByOrganization(ctx, organizationID, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.OrderSummary, 0, len(orders))
	for i := range orders {
		summaries = append(summaries, orders[i].Summarize())
	}

	return summaries, nil
}

func (s *OrderService) begin(chatID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[chatID]; busy {
		return false
	}
	s.inFlight[chatID] = struct{}{}
	return true
}

func (s *OrderService) end(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, chatID)
}

// resumePending swaps the freshly built order for the one a failed earlier
// attempt left behind, as long as the cart still consolidates to the same
// positions. Any cart change drops the old build and its id.
func (s *OrderService) resumePending(chatID string, built *domain.Order) *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.pending[chatID]; ok && slices.Equal(prev.Positions, built.Positions) {
		return prev
	}
	s.pending[chatID] = built
	return built
}

func (s *OrderService) forgetPending(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, chatID)
}

func (s *OrderService) fail(err *order.SubmitError) error {
	if s.metrics != nil {
		s.metrics.SubmitFailures.WithLabelValues(string(err.Kind)).Inc()
	}
	return err
}

func (s *OrderService) clearCart(chatID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.carts.Clear(ctx, chatID); err != nil {
		log.Printf("cart clear error: %v", err)
	}
}

func submitError(err error) *order.SubmitError {
	if errors.Is(err, repository.ErrDuplicateOrder) {
		return order.NewSubmitError(order.SubmitErrRejected, err)
	}
	return order.NewSubmitError(order.SubmitErrConnection, err)
}
