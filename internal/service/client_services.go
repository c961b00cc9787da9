package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/adapter"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/store"
	"github.com/MKhiriev/go-shop-admin/internal/workers"
	"github.com/MKhiriev/go-shop-admin/models"
)

// ClientServices bundles the console services around one session.
type ClientServices struct {
	SessionService ClientSessionService
	ProductService ClientProductService
	OrderService   ClientOrderService
	PersistJob     workers.Worker
}

// ClientServicesOptions carries the behaviour settings of the services.
type ClientServicesOptions struct {
	// OrderTransitions is parsed with [models.ParseTransitionPolicy].
	OrderTransitions string
	// PersistInterval is passed to [NewClientPersistJob].
	PersistInterval time.Duration
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, opts ClientServicesOptions, log *logger.Logger) (*ClientServices, error) {
	policy, err := models.ParseTransitionPolicy(opts.OrderTransitions)
	if err != nil {
		return nil, fmt.Errorf("order service: %w", err)
	}

	sessionSvc := NewClientSessionService(serverAdapter, storages.Session, log)

	return &ClientServices{
		SessionService: sessionSvc,
		ProductService: NewClientProductService(serverAdapter, sessionSvc, log),
		OrderService:   NewClientOrderService(serverAdapter, sessionSvc, policy, log),
		PersistJob:     NewClientPersistJob(sessionSvc, opts.PersistInterval, log),
	}, nil
}
