package stubapi

import (
	"context"

	"github.com/MKhiriev/go-shop-admin/models"
)

// AuthService checks admin credentials and issues and verifies bearer tokens.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CatalogService manages the product catalog.
type CatalogService interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
	CreateProduct(ctx context.Context, req models.NewProductRequest) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// OrderService lists orders and changes their delivery status.
type OrderService interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error)

	// AddOrder places an order directly into the book. It has no HTTP route
	// and is used for seeding.
	AddOrder(ctx context.Context, order models.Order) models.Order
}

// AppInfoService reports build metadata of the running backend.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
