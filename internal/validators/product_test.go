// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validProduct() models.Product {
	return models.Product{
		ID:       "p1",
		Name:     "Apple",
		Category: "fruits",
		Price:    120,
		MRP:      150,
		InStock:  true,
	}
}

func violationsOf(t *testing.T, err error) Violations {
	t.Helper()
	var v Violations
	require.True(t, errors.As(err, &v), "expected Violations, got %v", err)
	return v
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewProductValidator()
	require.NotNil(t, v)
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("Product value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validProduct()))
	})

	t.Run("Product pointer", func(t *testing.T) {
		p := validProduct()
		require.NoError(t, v.Validate(ctx, &p))
	})

	t.Run("NewProductRequest pointer", func(t *testing.T) {
		req := models.NewProductRequest{Name: "Apple", Price: 10}
		require.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("ProductPatch pointer", func(t *testing.T) {
		patch := models.ProductPatch{Name: ptr("Pear")}
		require.NoError(t, v.Validate(ctx, &patch))
	})
}

// ---------------------------------------------------------------------------
// TestValidateProduct
// ---------------------------------------------------------------------------

func TestValidateProduct(t *testing.T) {
	v := NewProductValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(p *models.Product)
		want   Violations
	}{
		{"valid", func(p *models.Product) {}, nil},
		{"blank name", func(p *models.Product) { p.Name = "  " }, Violations{MsgNameRequired}},
		{"negative price", func(p *models.Product) { p.Price = -1 }, Violations{MsgInvalidPrice}},
		{"infinite mrp", func(p *models.Product) { p.MRP = math.Inf(1) }, Violations{MsgInvalidMRP}},
		{"mrp below price", func(p *models.Product) { p.MRP = 100 }, Violations{MsgMRPBelowPrice}},
		{"mrp equal to price", func(p *models.Product) { p.MRP = p.Price }, nil},
		{
			"every rule broken, cross check skipped",
			func(p *models.Product) { p.Name = ""; p.Price = math.NaN(); p.MRP = -5 },
			Violations{MsgNameRequired, MsgInvalidPrice, MsgInvalidMRP},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)

			err := v.Validate(ctx, p)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, violationsOf(t, err))
		})
	}
}

func TestValidateProduct_FieldScoping(t *testing.T) {
	v := NewProductValidator()
	ctx := context.Background()

	p := validProduct()
	p.Name = ""
	p.MRP = 1

	t.Run("only price checked", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, p, FieldPrice))
	})

	t.Run("name and cross check", func(t *testing.T) {
		err := v.Validate(ctx, p, FieldName, FieldMRPNotBelowPrice)
		assert.Equal(t, Violations{MsgNameRequired, MsgMRPBelowPrice}, violationsOf(t, err))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, p, "weight")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateNewProductRequest
// ---------------------------------------------------------------------------

func TestValidateNewProductRequest(t *testing.T) {
	v := NewProductValidator()
	ctx := context.Background()

	t.Run("zero mrp means same as price", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.NewProductRequest{Name: "Milk", Price: 60}))
	})

	t.Run("name is trimmed", func(t *testing.T) {
		err := v.Validate(ctx, models.NewProductRequest{Name: " \t", Price: 60})
		assert.Equal(t, Violations{MsgNameRequired}, violationsOf(t, err))
	})

	t.Run("explicit mrp below price", func(t *testing.T) {
		err := v.Validate(ctx, models.NewProductRequest{Name: "Milk", Price: 60, MRP: 50})
		assert.Equal(t, Violations{MsgMRPBelowPrice}, violationsOf(t, err))
	})
}

// ---------------------------------------------------------------------------
// TestValidatePatch
// ---------------------------------------------------------------------------

func TestValidatePatch(t *testing.T) {
	v := NewProductValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		patch  models.ProductPatch
		fields []string
		want   Violations
	}{
		{"empty patch", models.ProductPatch{}, nil, Violations{MsgNoFieldsToUpdate}},
		{"only description", models.ProductPatch{Description: ptr("")}, nil, nil},
		{"blank name", models.ProductPatch{Name: ptr(" ")}, nil, Violations{MsgNameRequired}},
		{
			"bad amounts",
			models.ProductPatch{Price: ptr(-1.0), MRP: ptr(math.NaN())},
			nil,
			Violations{MsgInvalidPrice, MsgInvalidMRP},
		},
		{"cross-field rule needs the merged product", models.ProductPatch{Price: ptr(1e6)}, nil, nil},
		{"emptiness only", models.ProductPatch{Name: ptr("")}, []string{FieldPatchNotEmpty}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.patch, tt.fields...)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, violationsOf(t, err))
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, models.ProductPatch{Name: ptr("x")}, FieldMRPNotBelowPrice)
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestViolations_Error(t *testing.T) {
	err := Violations{MsgNameRequired, MsgInvalidPrice}
	assert.Equal(t, "name is required, price must be a non-negative number", err.Error())
}
