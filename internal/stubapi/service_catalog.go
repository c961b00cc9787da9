package stubapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/utils"
	"github.com/MKhiriev/go-shop-admin/internal/validators"
	"github.com/MKhiriev/go-shop-admin/models"
)

// catalogService keeps products in memory. order preserves insertion order
// so listings are stable between calls.
type catalogService struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string

	ids       *utils.IDGenerator
	validator validators.Validator
	logger    *logger.Logger
}

// NewCatalogService returns an empty in-memory catalog that checks every
// write with validator.
func NewCatalogService(validator validators.Validator, log *logger.Logger) CatalogService {
	return &catalogService{
		products:  make(map[string]models.Product),
		ids:       utils.NewIDGenerator(""),
		validator: validator,
		logger:    log,
	}
}

func (c *catalogService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Category = strings.TrimSpace(filter.Category)

	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]models.Product, 0, len(c.order))
	for _, id := range c.order {
		if p := c.products[id]; matchesFilter(p, filter) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (c *catalogService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// CreateProduct validates req and stores it under a fresh id. A zero MRP is
// taken to mean "same as price".
func (c *catalogService) CreateProduct(ctx context.Context, req models.NewProductRequest) (models.Product, error) {
	p := models.Product{
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		Price:       req.Price,
		MRP:         req.MRP,
		Unit:        req.Unit,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		InStock:     req.InStock,
	}
	if p.MRP == 0 {
		p.MRP = p.Price
	}
	if err := c.validate(ctx, p); err != nil {
		return models.Product{}, err
	}

	p.ID = c.ids.Generate()

	c.mu.Lock()
	c.products[p.ID] = p
	c.order = append(c.order, p.ID)
	c.mu.Unlock()

	logger.FromContext(ctx).Info().Str("id", p.ID).Str("name", p.Name).Msg("product created")
	return p, nil
}

// UpdateProduct merges patch into the stored product. The merged result must
// still pass validation, otherwise nothing changes.
func (c *catalogService) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	if err := c.validate(ctx, patch, validators.FieldPatchNotEmpty); err != nil {
		return models.Product{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}

	updated := applyPatch(current, patch)
	if err := c.validate(ctx, updated); err != nil {
		return models.Product{}, fmt.Errorf("product %s: %w", id, err)
	}

	c.products[id] = updated
	logger.FromContext(ctx).Info().Str("id", id).Msg("product updated")
	return updated, nil
}

func (c *catalogService) DeleteProduct(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.products[id]; !ok {
		return ErrProductNotFound
	}

	delete(c.products, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	logger.FromContext(ctx).Info().Str("id", id).Msg("product deleted")
	return nil
}

// validate runs the validator and turns its violations into a
// *ValidationError the HTTP layer knows how to render.
func (c *catalogService) validate(ctx context.Context, obj any, fields ...string) error {
	err := c.validator.Validate(ctx, obj, fields...)
	if err == nil {
		return nil
	}

	var violations validators.Violations
	if errors.As(err, &violations) {
		return &ValidationError{Problems: violations}
	}
	return fmt.Errorf("validating product: %w", err)
}
