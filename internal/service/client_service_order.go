package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-shop-admin/internal/adapter"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/models"
)

type clientOrderService struct {
	adapter adapter.ServerAdapter
	session ClientSessionService
	policy  models.TransitionPolicy
	logger  *logger.Logger

	mu      sync.RWMutex
	current []models.Order

	observers observers[[]models.Order]
}

// NewClientOrderService creates the order workflow client. An empty policy
// means [models.PolicyAny].
func NewClientOrderService(serverAdapter adapter.ServerAdapter, session ClientSessionService, policy models.TransitionPolicy, log *logger.Logger) ClientOrderService {
	if policy == "" {
		policy = models.PolicyAny
	}
	return &clientOrderService{
		adapter: serverAdapter,
		session: session,
		policy:  policy,
		logger:  log,
	}
}

func (o *clientOrderService) List(ctx context.Context) ([]models.Order, error) {
	header, err := authorize(o.session)
	if err != nil {
		return nil, err
	}

	orders, err := o.adapter.ListOrders(ctx, header)
	if err != nil {
		o.logger.Err(err).Str("func", "clientOrderService.List").Msg("failed to load orders")
		return nil, authorizedError(ctx, o.session, err)
	}
	if orders == nil {
		orders = []models.Order{}
	}

	o.mu.Lock()
	o.current = orders
	o.mu.Unlock()

	o.observers.notify(o.Current())
	return o.Current(), nil
}

func (o *clientOrderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Order{}, missingField("orderId", "Order id required")
	}
	status, ok := models.ParseOrderStatus(string(status))
	if !ok {
		return models.Order{}, &ValidationError{
			Kind:    ErrInvalidStatus,
			Field:   "status",
			Message: fmt.Sprintf("Unknown status %q", status),
		}
	}

	header, err := authorize(o.session)
	if err != nil {
		return models.Order{}, err
	}

	if err = o.checkTransition(ctx, id, status); err != nil {
		return models.Order{}, err
	}

	updated, err := o.adapter.UpdateOrderStatus(ctx, header, id, status)
	if err != nil {
		o.logger.Err(err).Str("func", "clientOrderService.UpdateStatus").Str("order_id", id).Msg("status update rejected")
		return models.Order{}, authorizedError(ctx, o.session, err)
	}

	o.logger.Info().Str("order_id", id).Str("status", status.String()).Msg("order status updated")
	if _, err = o.Refresh(ctx); err != nil {
		o.logger.Err(err).Msg("order list refresh after update failed")
		return updated, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	return updated, nil
}

// checkTransition applies the policy against the cached status of id,
// fetching the list once when the order is not cached. Orders the backend
// does not list are left for the backend to reject.
func (o *clientOrderService) checkTransition(ctx context.Context, id string, to models.OrderStatus) error {
	if o.policy == models.PolicyAny {
		return nil
	}

	from, found := o.cachedStatus(id)
	if !found {
		if _, err := o.List(ctx); err != nil {
			return err
		}
		if from, found = o.cachedStatus(id); !found {
			return nil
		}
	}

	if !o.policy.CanTransition(from, to) {
		return &ValidationError{
			Kind:    ErrInvalidTransition,
			Field:   "status",
			Message: fmt.Sprintf("Cannot move order from %s back to %s", from, to),
		}
	}
	return nil
}

func (o *clientOrderService) cachedStatus(id string) (models.OrderStatus, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, order := range o.current {
		if order.OrderID == id {
			return order.Status, true
		}
	}
	return "", false
}

func (o *clientOrderService) Refresh(ctx context.Context) ([]models.Order, error) {
	return o.List(ctx)
}

func (o *clientOrderService) Current() []models.Order {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.Order, len(o.current))
	copy(out, o.current)
	return out
}

func (o *clientOrderService) Policy() models.TransitionPolicy {
	return o.policy
}

func (o *clientOrderService) Subscribe(fn func([]models.Order)) {
	o.observers.subscribe(fn)
}
