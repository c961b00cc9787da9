// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the admin console and
// the shop REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. The adapter holds no session state: authorized calls take
// the Authorization header value as an argument, derived by the session
// service, and an empty value sends the request anonymously.
//
// Non-2xx responses are returned as [*HTTPError] wrapping one of the
// sentinels in errors.go (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for
// 401); transport failures wrap [ErrRequestFailed].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-shop-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the shop REST API (base path
// /api).
type ServerAdapter interface {
	// Login posts the credentials to POST /auth/login and returns the issued
	// bearer token. It does not store the token anywhere.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// ListProducts fetches GET /products. Only non-empty filter fields are
	// sent as query parameters.
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)

	// GetProduct fetches GET /products/{id}.
	GetProduct(ctx context.Context, id string) (models.Product, error)

	// CreateProduct posts a new product to POST /products.
	CreateProduct(ctx context.Context, authHeader string, req models.NewProductRequest) (models.Product, error)

	// UpdateProduct sends a partial update to PUT /products/{id}.
	UpdateProduct(ctx context.Context, authHeader string, id string, patch models.ProductPatch) (models.Product, error)

	// DeleteProduct sends DELETE /products/{id}.
	DeleteProduct(ctx context.Context, authHeader string, id string) (models.Ack, error)

	// ListOrders fetches GET /orders.
	ListOrders(ctx context.Context, authHeader string) ([]models.Order, error)

	// UpdateOrderStatus sends {status} to PUT /orders/{id}.
	UpdateOrderStatus(ctx context.Context, authHeader string, id string, status models.OrderStatus) (models.Order, error)
}
