package models

import (
	"strings"
	"time"
)

// OrderStatus is the delivery lifecycle marker of an order.
type OrderStatus string

const (
	OrderReceived       OrderStatus = "received"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderReceived,
	OrderPreparing,
	OrderOutForDelivery,
	OrderDelivered,
}

// ParseOrderStatus converts s into an OrderStatus. The second value is false
// when s is not one of the four known statuses.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(strings.TrimSpace(s))
	return status, status.IsValid()
}

// IsValid reports whether s is one of the known statuses.
func (s OrderStatus) IsValid() bool {
	return s.Rank() >= 0
}

// Rank returns the position of s in the lifecycle, or -1 for unknown values.
func (s OrderStatus) Rank() int {
	for i, known := range OrderStatuses {
		if s == known {
			return i
		}
	}
	return -1
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// Order is a customer order as listed by the backend. Only Status is ever
// changed from the console.
type Order struct {
	OrderID       string      `json:"orderId"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        OrderStatus `json:"status"`
	Date          time.Time   `json:"date"`
}

// StatusUpdateRequest is the body of PUT /orders/{id}.
type StatusUpdateRequest struct {
	Status OrderStatus `json:"status"`
}
