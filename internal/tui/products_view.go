package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type productListModel struct {
	items   []models.Product
	idx     int
	loading bool
	filter  models.ProductFilter

	filtering    bool
	filterInputs []textinput.Model
	filterFocus  int
}

func newProductListModel() productListModel {
	search := textinput.New()
	search.Placeholder = "name or description"
	search.Width = 30

	category := textinput.New()
	category.Placeholder = "exact category"
	category.Width = 20

	return productListModel{filterInputs: []textinput.Model{search, category}}
}

func (m *productListModel) setItems(items []models.Product) {
	m.loading = false
	m.items = items
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m productListModel) current() (models.Product, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Product{}, false
	}
	return m.items[m.idx], true
}

func (m productListModel) startFilter() productListModel {
	m.filtering = true
	m.filterInputs[0].SetValue(m.filter.Search)
	m.filterInputs[1].SetValue(m.filter.Category)
	m.filterFocus = 0
	m.filterInputs[0].Focus()
	m.filterInputs[1].Blur()
	return m
}

func (m productListModel) stopFilter() productListModel {
	m.filtering = false
	for i := range m.filterInputs {
		m.filterInputs[i].Blur()
	}
	return m
}

func (m productListModel) pendingFilter() models.ProductFilter {
	return models.ProductFilter{
		Search:   strings.TrimSpace(m.filterInputs[0].Value()),
		Category: strings.TrimSpace(m.filterInputs[1].Value()),
	}
}

func (m productListModel) switchFilterFocus() productListModel {
	m.filterInputs[m.filterFocus].Blur()
	m.filterFocus = (m.filterFocus + 1) % len(m.filterInputs)
	m.filterInputs[m.filterFocus].Focus()
	return m
}

func (m productListModel) View(spin string) string {
	var b strings.Builder

	if m.filtering {
		b.WriteString("Search:   [" + m.filterInputs[0].View() + "]\n")
		b.WriteString("Category: [" + m.filterInputs[1].View() + "]\n\n")
	} else {
		fmt.Fprintf(&b, "Search: %s   Category: %s\n\n",
			valueOrDash(m.filter.Search), valueOrDash(m.filter.Category))
	}

	switch {
	case m.loading:
		b.WriteString(spin + " Loading...")
	case len(m.items) == 0:
		b.WriteString("No products")
	default:
		b.WriteString(helpStyle.Render(productRow("Name", "Category", "Price", "MRP", "Unit", "In stock")))
		for i, p := range m.items {
			row := productRow(clean(p.Name), clean(p.Category), formatAmount(p.Price),
				formatAmount(p.MRP), clean(p.Unit), yesNo(p.InStock))
			if i == m.idx {
				row = selectedStyle.Render(row)
			}
			b.WriteString("\n")
			b.WriteString(row)
		}
	}

	hotKeys := "↑/↓: move │ /: filter │ n: new │ e: edit │ d: delete │ c: copy id │ r: refresh │ o: orders │ v: about │ L: logout │ q: quit"
	if m.filtering {
		hotKeys = "tab: next field │ enter: apply │ esc: cancel"
	}
	return renderPage("PRODUCTS", b.String(), hotKeys)
}

func productRow(name, category, price, mrp, unit, inStock string) string {
	return padRight(name, 26) + " " +
		padRight(category, 14) + " " +
		padRight(price, 10) + " " +
		padRight(mrp, 10) + " " +
		padRight(unit, 8) + " " +
		inStock
}
