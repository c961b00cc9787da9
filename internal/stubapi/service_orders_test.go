package stubapi

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_AddOrder_FillsDefaults(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewOrderService(logger.Nop()).(*orderService)
	svc.now = func() time.Time { return fixed }

	order := svc.AddOrder(context.Background(), models.Order{CustomerName: "Asha"})

	assert.True(t, strings.HasPrefix(order.OrderID, "ORD-"))
	assert.Equal(t, fixed, order.Date)
	assert.Equal(t, models.OrderReceived, order.Status)
}

func TestOrderService_ListOrders_NewestFirst(t *testing.T) {
	svc := NewOrderService(logger.Nop())
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	svc.AddOrder(context.Background(), models.Order{OrderID: "A", Date: base})
	svc.AddOrder(context.Background(), models.Order{OrderID: "B", Date: base.Add(time.Hour)})
	svc.AddOrder(context.Background(), models.Order{OrderID: "C", Date: base.Add(-time.Hour)})

	orders, err := svc.ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []string{"B", "A", "C"}, []string{orders[0].OrderID, orders[1].OrderID, orders[2].OrderID})
}

func TestOrderService_ListOrders_Empty(t *testing.T) {
	orders, err := NewOrderService(logger.Nop()).ListOrders(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	svc := NewOrderService(logger.Nop())
	svc.AddOrder(context.Background(), models.Order{OrderID: "ORD-1", Status: models.OrderDelivered})

	// the backend itself accepts backward moves
	updated, err := svc.UpdateOrderStatus(context.Background(), "ORD-1", models.OrderPreparing)

	require.NoError(t, err)
	assert.Equal(t, models.OrderPreparing, updated.Status)

	orders, _ := svc.ListOrders(context.Background())
	assert.Equal(t, models.OrderPreparing, orders[0].Status)
}

func TestOrderService_UpdateOrderStatus_Errors(t *testing.T) {
	svc := NewOrderService(logger.Nop())
	svc.AddOrder(context.Background(), models.Order{OrderID: "ORD-1"})

	_, err := svc.UpdateOrderStatus(context.Background(), "ORD-1", models.OrderStatus("lost"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateOrderStatus(context.Background(), "ORD-404", models.OrderDelivered)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
