// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	fieldName = iota
	fieldCategory
	fieldPrice
	fieldMRP
	fieldUnit
	fieldImageURL
	fieldDescription
	fieldInStock
)

var formLabels = []string{
	"Name",
	"Category",
	"Price",
	"MRP",
	"Unit",
	"Image URL",
	"Description",
	"In stock",
}

const msgInvalidInStock = "In stock must be yes or no"

type productFormModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	loading    bool
	submitting bool
	// original is the product as fetched for editing; a patch carries only
	// the fields that differ from it.
	original models.Product
}

// newProductForm returns an empty creation form. New products are always
// listed as in stock, so the in-stock field only exists when editing.
func newProductForm() productFormModel {
	m := productFormModel{inputs: newFormInputs(fieldInStock)}
	m.inputs[fieldUnit].Placeholder = models.DefaultProductUnit
	m.inputs[fieldImageURL].Placeholder = models.DefaultProductImageURL
	m.inputs[fieldMRP].Placeholder = "same as price"
	return m
}

// newLoadingProductForm is shown while the product to edit is fetched.
func newLoadingProductForm() productFormModel {
	return productFormModel{editing: true, loading: true}
}

func newEditProductForm(p models.Product) productFormModel {
	m := productFormModel{
		inputs:   newFormInputs(len(formLabels)),
		editing:  true,
		original: p,
	}
	m.inputs[fieldName].SetValue(clean(p.Name))
	m.inputs[fieldCategory].SetValue(clean(p.Category))
	m.inputs[fieldPrice].SetValue(formatNumber(p.Price))
	m.inputs[fieldMRP].SetValue(formatNumber(p.MRP))
	m.inputs[fieldUnit].SetValue(clean(p.Unit))
	m.inputs[fieldImageURL].SetValue(clean(p.ImageURL))
	m.inputs[fieldDescription].SetValue(clean(p.Description))
	m.inputs[fieldInStock].SetValue(yesNo(p.InStock))
	return m
}

func newFormInputs(n int) []textinput.Model {
	inputs := make([]textinput.Model, n)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].CharLimit = 512
	}
	inputs[0].Focus()
	return inputs
}

func (m productFormModel) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

// toDraft collects the creation form. Price is NaN when it is not a
// number, which the catalog service rejects.
func (m productFormModel) toDraft() models.ProductDraft {
	draft := models.ProductDraft{
		Name:        m.value(fieldName),
		Category:    m.value(fieldCategory),
		Price:       parseAmount(m.value(fieldPrice)),
		Unit:        m.value(fieldUnit),
		ImageURL:    m.value(fieldImageURL),
		Description: m.value(fieldDescription),
	}
	if raw := m.value(fieldMRP); raw != "" {
		mrp := parseAmount(raw)
		draft.MRP = &mrp
	}
	return draft
}

// toPatch builds a partial update holding only the edited fields. ok is
// false when the in-stock field is neither yes nor no.
func (m productFormModel) toPatch() (patch models.ProductPatch, ok bool) {
	orig := m.original

	patch.Name = changedText(m.value(fieldName), orig.Name)
	patch.Category = changedText(m.value(fieldCategory), orig.Category)
	patch.Price = changedAmount(m.value(fieldPrice), orig.Price)
	patch.MRP = changedAmount(m.value(fieldMRP), orig.MRP)
	patch.Unit = changedText(m.value(fieldUnit), orig.Unit)
	patch.ImageURL = changedText(m.value(fieldImageURL), orig.ImageURL)
	patch.Description = changedText(m.value(fieldDescription), orig.Description)

	inStock, ok := parseYesNo(m.value(fieldInStock))
	if !ok {
		return models.ProductPatch{}, false
	}
	if inStock != orig.InStock {
		patch.InStock = &inStock
	}

	return patch, true
}

func (m productFormModel) focusNext() productFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m productFormModel) focusPrev() productFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m productFormModel) View() string {
	title := "NEW PRODUCT"
	if m.editing {
		title = "EDIT PRODUCT"
	}
	if m.loading {
		return renderPage(title, "Loading...", "esc: back")
	}

	var b strings.Builder
	if m.editing {
		b.WriteString("ID: " + clean(m.original.ID) + "\n\n")
	}
	for i, input := range m.inputs {
		b.WriteString(padRight(formLabels[i]+":", 13))
		b.WriteString("[")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}
	if m.submitting {
		b.WriteString("\n[Saving...]")
	} else {
		b.WriteString("\n[Save]")
	}

	return renderPage(title, b.String(), "tab: next field │ enter: save │ esc: back")
}

// changedText returns the trimmed input when it differs from what the form
// was prefilled with.
func changedText(input, original string) *string {
	if input == strings.TrimSpace(clean(original)) {
		return nil
	}
	return &input
}

// changedAmount parses input and returns it when it differs from original.
// Unparsable input is returned as NaN so that validation reports it.
func changedAmount(input string, original float64) *float64 {
	v := parseAmount(input)
	if v == original {
		return nil
	}
	return &v
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseYesNo(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1":
		return true, true
	case "n", "no", "false", "0":
		return false, true
	}
	return false, false
}
