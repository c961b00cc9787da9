package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/MKhiriev/go-shop-admin/internal/adapter"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/models"
)

type clientProductService struct {
	adapter adapter.ServerAdapter
	session ClientSessionService
	logger  *logger.Logger

	mu      sync.RWMutex
	current []models.Product
	filter  models.ProductFilter

	observers observers[[]models.Product]
}

// NewClientProductService creates the product catalog client. Listing is
// anonymous; mutations take the bearer header from session.
func NewClientProductService(serverAdapter adapter.ServerAdapter, session ClientSessionService, log *logger.Logger) ClientProductService {
	return &clientProductService{
		adapter: serverAdapter,
		session: session,
		logger:  log,
	}
}

func (p *clientProductService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	filter = models.ProductFilter{
		Search:   strings.TrimSpace(filter.Search),
		Category: strings.TrimSpace(filter.Category),
	}

	products, err := p.adapter.ListProducts(ctx, filter)
	if err != nil {
		p.logger.Err(err).Str("func", "clientProductService.List").Msg("failed to load products")
		return nil, mapAdapterError(err)
	}
	if products == nil {
		products = []models.Product{}
	}

	p.mu.Lock()
	p.current = products
	p.filter = filter
	p.mu.Unlock()

	p.observers.notify(p.Current())
	return p.Current(), nil
}

func (p *clientProductService) Get(ctx context.Context, id string) (models.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Product{}, missingField("id", "Product id required")
	}

	product, err := p.adapter.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, mapAdapterError(err)
	}
	return product, nil
}

func (p *clientProductService) Create(ctx context.Context, draft models.ProductDraft) (models.Product, error) {
	req, err := newProductRequest(draft)
	if err != nil {
		return models.Product{}, err
	}

	header, err := authorize(p.session)
	if err != nil {
		return models.Product{}, err
	}

	created, err := p.adapter.CreateProduct(ctx, header, req)
	if err != nil {
		p.logger.Err(err).Str("func", "clientProductService.Create").Str("name", req.Name).Msg("create rejected")
		return models.Product{}, authorizedError(ctx, p.session, err)
	}

	p.logger.Info().Str("product_id", created.ID).Msg("product created")
	return created, p.refreshAfterMutation(ctx)
}

func (p *clientProductService) Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Product{}, missingField("id", "Product id required")
	}
	if err := validatePatch(&patch); err != nil {
		return models.Product{}, err
	}

	header, err := authorize(p.session)
	if err != nil {
		return models.Product{}, err
	}

	updated, err := p.adapter.UpdateProduct(ctx, header, id, patch)
	if err != nil {
		p.logger.Err(err).Str("func", "clientProductService.Update").Str("product_id", id).Msg("update rejected")
		return models.Product{}, authorizedError(ctx, p.session, err)
	}

	p.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, p.refreshAfterMutation(ctx)
}

func (p *clientProductService) Delete(ctx context.Context, id string, confirmed bool) (models.Ack, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Ack{}, missingField("id", "Product id required")
	}
	if !confirmed {
		return models.Ack{}, ErrNotConfirmed
	}

	header, err := authorize(p.session)
	if err != nil {
		return models.Ack{}, err
	}

	ack, err := p.adapter.DeleteProduct(ctx, header, id)
	if err != nil {
		p.logger.Err(err).Str("func", "clientProductService.Delete").Str("product_id", id).Msg("delete rejected")
		return models.Ack{}, authorizedError(ctx, p.session, err)
	}

	p.logger.Info().Str("product_id", id).Msg("product deleted")
	return ack, p.refreshAfterMutation(ctx)
}

func (p *clientProductService) Refresh(ctx context.Context) ([]models.Product, error) {
	return p.List(ctx, p.Filter())
}

func (p *clientProductService) Current() []models.Product {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]models.Product, len(p.current))
	copy(out, p.current)
	return out
}

func (p *clientProductService) Filter() models.ProductFilter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.filter
}

func (p *clientProductService) Subscribe(fn func([]models.Product)) {
	p.observers.subscribe(fn)
}

func (p *clientProductService) refreshAfterMutation(ctx context.Context) error {
	if _, err := p.Refresh(ctx); err != nil {
		p.logger.Err(err).Msg("product list refresh after mutation failed")
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	return nil
}

// newProductRequest validates draft and applies the creation defaults.
func newProductRequest(draft models.ProductDraft) (models.NewProductRequest, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return models.NewProductRequest{}, missingField("name", MsgNamePriceReq)
	}
	if !validAmount(draft.Price) {
		return models.NewProductRequest{}, invalidNumber("price", MsgNamePriceReq)
	}

	mrp := draft.Price
	if draft.MRP != nil && *draft.MRP != 0 {
		if !validAmount(*draft.MRP) {
			return models.NewProductRequest{}, invalidNumber("mrp", "MRP must be a non-negative number")
		}
		if *draft.MRP < draft.Price {
			return models.NewProductRequest{}, invalidNumber("mrp", "MRP cannot be lower than price")
		}
		mrp = *draft.MRP
	}

	unit := strings.TrimSpace(draft.Unit)
	if unit == "" {
		unit = models.DefaultProductUnit
	}
	imageURL := strings.TrimSpace(draft.ImageURL)
	if imageURL == "" {
		imageURL = models.DefaultProductImageURL
	}

	return models.NewProductRequest{
		Name:        name,
		Category:    strings.TrimSpace(draft.Category),
		Price:       draft.Price,
		MRP:         mrp,
		Unit:        unit,
		ImageURL:    imageURL,
		Description: strings.TrimSpace(draft.Description),
		InStock:     true,
	}, nil
}

// validatePatch checks the provided fields and trims the provided name.
func validatePatch(patch *models.ProductPatch) error {
	if patch.IsEmpty() {
		return missingField("patch", "Nothing to update")
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return missingField("name", "Name cannot be empty")
		}
		patch.Name = &name
	}
	if patch.Price != nil && !validAmount(*patch.Price) {
		return invalidNumber("price", "Price must be a non-negative number")
	}
	if patch.MRP != nil {
		if !validAmount(*patch.MRP) {
			return invalidNumber("mrp", "MRP must be a non-negative number")
		}
		if patch.Price != nil && *patch.MRP < *patch.Price {
			return invalidNumber("mrp", "MRP cannot be lower than price")
		}
	}
	return nil
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
