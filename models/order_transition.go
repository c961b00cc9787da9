package models

import (
	"fmt"
	"strings"
)

// TransitionPolicy decides which order status changes the console lets
// through.
type TransitionPolicy string

const (
	// PolicyAny allows every change between the four known statuses.
	PolicyAny TransitionPolicy = "any"

	// PolicyForward only allows moving an order forward in its lifecycle.
	// Re-sending the current status is allowed.
	PolicyForward TransitionPolicy = "forward"
)

// ParseTransitionPolicy accepts "any", "forward" or an empty string (any).
func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	switch TransitionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyAny:
		return PolicyAny, nil
	case PolicyForward:
		return PolicyForward, nil
	}
	return "", fmt.Errorf("unknown order transition policy %q", s)
}

// CanTransition reports whether from -> to is allowed. Both statuses must be
// known.
func (p TransitionPolicy) CanTransition(from, to OrderStatus) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	if p == PolicyForward {
		return to.Rank() >= from.Rank()
	}
	return true
}

// Next lists the statuses reachable from from, in lifecycle order.
func (p TransitionPolicy) Next(from OrderStatus) []OrderStatus {
	out := make([]OrderStatus, 0, len(OrderStatuses))
	for _, to := range OrderStatuses {
		if p.CanTransition(from, to) {
			out = append(out, to)
		}
	}
	return out
}
