package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/go-shop-admin/models"
)

// Field names accepted by [ProductValidator.Validate] to restrict the check
// to a subset of rules.
const (
	FieldName  = "name"
	FieldPrice = "price"
	FieldMRP   = "mrp"

	// FieldMRPNotBelowPrice compares MRP with price. It is skipped when
	// either amount is itself invalid.
	FieldMRPNotBelowPrice = "mrp_not_below_price"

	// FieldPatchNotEmpty rejects a patch without a single field set.
	FieldPatchNotEmpty = "patch_not_empty"
)

// ProductValidator checks catalog payloads. Unlike a fail-fast validator it
// reports every broken rule at once as [Violations], so the caller can show
// the complete list.
type ProductValidator struct {
}

// NewProductValidator returns a ProductValidator as a Validator.
func NewProductValidator() Validator {
	return &ProductValidator{}
}

// Validate accepts models.Product, models.NewProductRequest and
// models.ProductPatch, by value or by pointer. A request is checked the way
// it would be stored, with a blank name trimmed away.
func (v *ProductValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Product:
		return v.validateProduct(ctx, value, fields...)
	case *models.Product:
		return v.validateProduct(ctx, *value, fields...)

	case models.NewProductRequest:
		return v.validateProduct(ctx, productFromRequest(value), fields...)
	case *models.NewProductRequest:
		return v.validateProduct(ctx, productFromRequest(*value), fields...)

	case models.ProductPatch:
		return v.validatePatch(ctx, value, fields...)
	case *models.ProductPatch:
		return v.validatePatch(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProductValidator) validateProduct(ctx context.Context, p models.Product, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPrice, FieldMRP, FieldMRPNotBelowPrice}
	}

	var violations Violations
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(p.Name) == "" {
				violations = append(violations, MsgNameRequired)
			}
		case FieldPrice:
			if !validAmount(p.Price) {
				violations = append(violations, MsgInvalidPrice)
			}
		case FieldMRP:
			if !validAmount(p.MRP) {
				violations = append(violations, MsgInvalidMRP)
			}
		case FieldMRPNotBelowPrice:
			if validAmount(p.Price) && validAmount(p.MRP) && p.MRP < p.Price {
				violations = append(violations, MsgMRPBelowPrice)
			}
		default:
			return ErrUnknownField
		}
	}

	if len(violations) > 0 {
		return violations
	}
	return nil
}

// validatePatch checks only the fields a patch carries. Cross-field rules
// need the merged product and are left to validateProduct.
func (v *ProductValidator) validatePatch(ctx context.Context, patch models.ProductPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatchNotEmpty, FieldName, FieldPrice, FieldMRP}
	}

	var violations Violations
	for _, f := range fields {
		switch f {
		case FieldPatchNotEmpty:
			if patch.IsEmpty() {
				return Violations{MsgNoFieldsToUpdate}
			}
		case FieldName:
			if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
				violations = append(violations, MsgNameRequired)
			}
		case FieldPrice:
			if patch.Price != nil && !validAmount(*patch.Price) {
				violations = append(violations, MsgInvalidPrice)
			}
		case FieldMRP:
			if patch.MRP != nil && !validAmount(*patch.MRP) {
				violations = append(violations, MsgInvalidMRP)
			}
		default:
			return ErrUnknownField
		}
	}

	if len(violations) > 0 {
		return violations
	}
	return nil
}

// productFromRequest mirrors how the catalog stores a new product: trimmed
// name, and a zero MRP standing for "same as price".
func productFromRequest(req models.NewProductRequest) models.Product {
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
	return p
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
