package stubapi

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/config"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/validators"
	"github.com/MKhiriev/go-shop-admin/models"
)

// Services bundles the stub backend services handed to the HTTP handler.
type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	OrderService   OrderService
	AppInfoService AppInfoService
}

// NewServices builds the backend from cfg and seeds it with demo data when
// cfg.SeedDemoData is set.
func NewServices(ctx context.Context, cfg *config.StubConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	services := &Services{
		AuthService:    authService,
		CatalogService: NewCatalogService(validators.NewProductValidator(), log),
		OrderService:   NewOrderService(log),
		AppInfoService: NewAppInfoService(buildInfo, log),
	}

	if cfg.SeedDemoData {
		if err := Seed(log.WithContext(ctx), services, time.Now()); err != nil {
			return nil, err
		}
		log.Info().Msg("demo data seeded")
	}

	return services, nil
}
