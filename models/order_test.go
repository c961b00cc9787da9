package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		in   string
		want OrderStatus
		ok   bool
	}{
		{in: "received", want: OrderReceived, ok: true},
		{in: " out_for_delivery ", want: OrderOutForDelivery, ok: true},
		{in: "delivered", want: OrderDelivered, ok: true},
		{in: "Delivered", want: "Delivered", ok: false},
		{in: "shipped", want: "shipped", ok: false},
		{in: "", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseOrderStatus(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderStatus_Rank(t *testing.T) {
	for i, s := range OrderStatuses {
		assert.Equal(t, i, s.Rank())
	}
	assert.Equal(t, -1, OrderStatus("lost").Rank())
}

func TestOrder_JSONKeys(t *testing.T) {
	raw := `{"orderId":"ORD1","customerName":"Ann","customerPhone":"+100","totalAmount":99.5,"status":"preparing","date":"2026-03-01T10:00:00Z"}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(raw), &o))
	assert.Equal(t, "ORD1", o.OrderID)
	assert.Equal(t, OrderPreparing, o.Status)
	assert.True(t, o.Date.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
}

func TestTransitionPolicy(t *testing.T) {
	t.Run("any allows backwards", func(t *testing.T) {
		assert.True(t, PolicyAny.CanTransition(OrderDelivered, OrderReceived))
		assert.Len(t, PolicyAny.Next(OrderDelivered), 4)
	})

	t.Run("forward", func(t *testing.T) {
		assert.True(t, PolicyForward.CanTransition(OrderReceived, OrderDelivered))
		assert.True(t, PolicyForward.CanTransition(OrderPreparing, OrderPreparing))
		assert.False(t, PolicyForward.CanTransition(OrderDelivered, OrderReceived))
		assert.Equal(t, []OrderStatus{OrderOutForDelivery, OrderDelivered}, PolicyForward.Next(OrderOutForDelivery))
	})

	t.Run("unknown statuses", func(t *testing.T) {
		assert.False(t, PolicyAny.CanTransition("lost", OrderReceived))
		assert.False(t, PolicyAny.CanTransition(OrderReceived, "lost"))
	})
}

func TestParseTransitionPolicy(t *testing.T) {
	p, err := ParseTransitionPolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyAny, p)

	p, err = ParseTransitionPolicy(" Forward ")
	require.NoError(t, err)
	assert.Equal(t, PolicyForward, p)

	_, err = ParseTransitionPolicy("strict")
	assert.Error(t, err)
}
