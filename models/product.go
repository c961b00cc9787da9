// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Defaults applied to a new product when the operator leaves the field empty.
const (
	DefaultProductUnit     = "1 kg"
	DefaultProductImageURL = "/images/placeholder.png"
)

// Product is a catalog listing as returned by the backend.
// ID is assigned by the server and never changed by the console.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	MRP         float64 `json:"mrp"`
	Unit        string  `json:"unit"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
	InStock     bool    `json:"inStock"`
}

// ProductDraft is a not-yet-persisted product collected from operator input.
//
// MRP is optional: nil (or zero) means "same as Price". Price may carry NaN
// when the operator typed something that is not a number; the catalog client
// rejects it before any request is made.
type ProductDraft struct {
	Name        string
	Category    string
	Price       float64
	MRP         *float64
	Unit        string
	ImageURL    string
	Description string
}

// NewProductRequest is the body of POST /products.
type NewProductRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	MRP         float64 `json:"mrp"`
	Unit        string  `json:"unit"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
	InStock     bool    `json:"inStock"`
}

// ProductPatch is a partial product update. Only non-nil fields are sent;
// the server decides how they are merged.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	MRP         *float64 `json:"mrp,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Description *string  `json:"description,omitempty"`
	InStock     *bool    `json:"inStock,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Category == nil &&
		p.Price == nil &&
		p.MRP == nil &&
		p.Unit == nil &&
		p.ImageURL == nil &&
		p.Description == nil &&
		p.InStock == nil
}

// ProductFilter narrows a product listing. Empty fields mean "no filter".
type ProductFilter struct {
	Search   string
	Category string
}
