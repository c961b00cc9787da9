package service

import (
	"context"

	"github.com/MKhiriev/go-shop-admin/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService owns the operator's bearer token. No other component
// holds the token; resource services only ask for the derived header.
type ClientSessionService interface {
	// Login exchanges credentials for a token, keeps it in memory and
	// persists it. Empty credentials fail with a [*ValidationError] before
	// any request; backend failures are returned as [*AuthError].
	Login(ctx context.Context, username, password string) (models.SessionState, error)

	// Logout forgets the token and removes its durable copy. It never
	// contacts the backend.
	Logout(ctx context.Context) error

	// Restore adopts a token left in durable storage by a previous run,
	// without contacting the backend. A missing token is not an error.
	Restore(ctx context.Context) (models.SessionState, error)

	// Persist writes the current token to durable storage. It is a no-op
	// when no token is held.
	Persist(ctx context.Context) error

	// Invalidate logs the operator out after the backend rejected the token.
	Invalidate(ctx context.Context, reason string)

	// AuthHeader returns "Bearer <token>", or "" when no token is held.
	AuthHeader() string

	// HasToken reports whether a token is held.
	HasToken() bool

	// State returns the observable session state.
	State() models.SessionState

	// Subscribe registers fn to be called after every state change.
	Subscribe(fn func(models.SessionState))
}

// ClientProductService lists and edits the product catalog. Every successful
// mutation re-fetches the list with the last filter and notifies
// subscribers; a failed call leaves the current list untouched.
type ClientProductService interface {
	// List fetches products matching filter and makes them current.
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)

	// Get fetches a single product, e.g. to prefill an edit form.
	Get(ctx context.Context, id string) (models.Product, error)

	// Create validates draft, fills defaults and submits it.
	Create(ctx context.Context, draft models.ProductDraft) (models.Product, error)

	// Update submits the non-nil fields of patch for product id.
	Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error)

	// Delete removes product id. confirmed must be true.
	Delete(ctx context.Context, id string, confirmed bool) (models.Ack, error)

	// Refresh re-runs List with the last filter.
	Refresh(ctx context.Context) ([]models.Product, error)

	// Current returns a copy of the last fetched list.
	Current() []models.Product

	// Filter returns the last filter passed to List.
	Filter() models.ProductFilter

	// Subscribe registers fn to be called with every newly fetched list.
	Subscribe(fn func([]models.Product))
}

// ClientOrderService lists orders and moves them through the delivery
// workflow. Both calls require a session token.
type ClientOrderService interface {
	// List fetches all orders and makes them current.
	List(ctx context.Context) ([]models.Order, error)

	// UpdateStatus sets the status of order id, subject to the configured
	// [models.TransitionPolicy].
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error)

	// Refresh is List under another name, for symmetry with products.
	Refresh(ctx context.Context) ([]models.Order, error)

	// Current returns a copy of the last fetched list.
	Current() []models.Order

	// Policy returns the active transition policy.
	Policy() models.TransitionPolicy

	// Subscribe registers fn to be called with every newly fetched list.
	Subscribe(fn func([]models.Order))
}
