package stubapi

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/utils"
	"github.com/MKhiriev/go-shop-admin/models"
)

type orderService struct {
	mu     sync.RWMutex
	orders map[string]models.Order

	ids    *utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewOrderService returns an empty in-memory order book. Any valid status
// may be set on any order; ordering rules are left to the console.
func NewOrderService(log *logger.Logger) OrderService {
	return &orderService{
		orders: make(map[string]models.Order),
		ids:    utils.NewIDGenerator("ORD-"),
		now:    time.Now,
		logger: log,
	}
}

// ListOrders returns every order, newest first.
func (o *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	o.mu.RLock()
	result := make([]models.Order, 0, len(o.orders))
	for _, order := range o.orders {
		result = append(result, order)
	}
	o.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date.Equal(result[j].Date) {
			return result[i].OrderID < result[j].OrderID
		}
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (o *orderService) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	if !status.IsValid() {
		return models.Order{}, ErrInvalidStatus
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	order, ok := o.orders[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}

	previous := order.Status
	order.Status = status
	o.orders[id] = order

	logger.FromContext(ctx).Info().
		Str("order_id", id).
		Str("from", previous.String()).
		Str("to", status.String()).
		Msg("order status changed")
	return order, nil
}

// AddOrder stores order, filling in a missing id, date or status.
func (o *orderService) AddOrder(ctx context.Context, order models.Order) models.Order {
	if order.OrderID == "" {
		order.OrderID = o.ids.Generate()
	}
	if order.Date.IsZero() {
		order.Date = o.now().UTC()
	}
	if !order.Status.IsValid() {
		order.Status = models.OrderReceived
	}

	o.mu.Lock()
	o.orders[order.OrderID] = order
	o.mu.Unlock()

	return order
}
