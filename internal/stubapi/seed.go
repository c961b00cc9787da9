package stubapi

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-admin/models"
)

var demoProducts = []models.NewProductRequest{
	{Name: "Fresh Apples", Category: "fruits", Price: 120, MRP: 150, Unit: "1 kg", ImageURL: "/images/apples.png", Description: "Crisp red apples", InStock: true},
	{Name: "Bananas", Category: "fruits", Price: 45, MRP: 50, Unit: "1 dozen", ImageURL: "/images/bananas.png", Description: "Ripe yellow bananas", InStock: true},
	{Name: "Tomatoes", Category: "vegetables", Price: 30, Unit: "1 kg", ImageURL: "/images/tomatoes.png", Description: "Vine tomatoes", InStock: true},
	{Name: "Spinach", Category: "vegetables", Price: 25, MRP: 30, Unit: "250 g", ImageURL: "/images/spinach.png", Description: "Leafy green spinach", InStock: false},
	{Name: "Whole Milk", Category: "dairy", Price: 60, MRP: 64, Unit: "1 l", ImageURL: "/images/milk.png", Description: "Full cream milk", InStock: true},
}

var demoOrders = []models.Order{
	{CustomerName: "Asha Rao", CustomerPhone: "+91 98450 00001", TotalAmount: 315, Status: models.OrderReceived},
	{CustomerName: "Vikram Shah", CustomerPhone: "+91 98450 00002", TotalAmount: 120, Status: models.OrderPreparing},
	{CustomerName: "Meera Iyer", CustomerPhone: "+91 98450 00003", TotalAmount: 88.5, Status: models.OrderOutForDelivery},
	{CustomerName: "Rohan Das", CustomerPhone: "+91 98450 00004", TotalAmount: 460, Status: models.OrderDelivered},
}

// Seed fills an empty backend with a handful of products and orders so the
// console has something to show. Orders are dated an hour apart, newest first.
func Seed(ctx context.Context, services *Services, now time.Time) error {
	for _, p := range demoProducts {
		if _, err := services.CatalogService.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	for i, o := range demoOrders {
		o.Date = now.Add(-time.Duration(i) * time.Hour).UTC()
		services.OrderService.AddOrder(ctx, o)
	}

	return nil
}
