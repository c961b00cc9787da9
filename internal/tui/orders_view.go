package tui

import (
	"strings"

	"github.com/MKhiriev/go-shop-admin/models"
)

const orderDateLayout = "02 Jan 2006 15:04"

type orderListModel struct {
	items   []models.Order
	idx     int
	loading bool

	// status picker
	picking   bool
	choices   []models.OrderStatus
	choiceIdx int
}

func (m *orderListModel) setItems(items []models.Order) {
	m.loading = false
	m.items = items
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m orderListModel) current() (models.Order, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Order{}, false
	}
	return m.items[m.idx], true
}

// startPicking opens the status picker on the statuses policy allows from
// the selected order's status, with the current status preselected.
func (m orderListModel) startPicking(policy models.TransitionPolicy) orderListModel {
	order, ok := m.current()
	if !ok {
		return m
	}
	m.choices = policy.Next(order.Status)
	if len(m.choices) == 0 {
		// unknown current status: offer every status
		m.choices = append([]models.OrderStatus(nil), models.OrderStatuses...)
	}
	m.choiceIdx = 0
	for i, s := range m.choices {
		if s == order.Status {
			m.choiceIdx = i
		}
	}
	m.picking = true
	return m
}

func (m orderListModel) chosen() models.OrderStatus {
	if m.choiceIdx < 0 || m.choiceIdx >= len(m.choices) {
		return ""
	}
	return m.choices[m.choiceIdx]
}

func (m orderListModel) View(spin string) string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(spin + " Loading...")
	case len(m.items) == 0:
		b.WriteString("No orders")
	default:
		b.WriteString(helpStyle.Render(orderRow("Order", "Customer", "Phone", "Total", "Status", "Date")))
		for i, o := range m.items {
			row := orderRow(clean(o.OrderID), clean(o.CustomerName), clean(o.CustomerPhone),
				formatAmount(o.TotalAmount), clean(o.Status.String()), formatOrderDate(o))
			if i == m.idx {
				row = selectedStyle.Render(row)
			}
			b.WriteString("\n")
			b.WriteString(row)
		}
	}

	hotKeys := "↑/↓: move │ s: change status │ c: copy id │ r: refresh │ p: products │ v: about │ L: logout │ q: quit"
	if m.picking {
		hotKeys = "↑/↓: choose │ enter: apply │ esc: cancel"
	}
	return renderPage("ORDERS", b.String(), hotKeys)
}

func (m orderListModel) pickerView() string {
	order, _ := m.current()

	var b strings.Builder
	b.WriteString("Status of " + clean(order.OrderID) + "\n")
	for i, s := range m.choices {
		cursor := "  "
		if i == m.choiceIdx {
			cursor = "> "
		}
		b.WriteString("\n" + cursor + s.String())
	}
	return overlayBoxStyle.Render(b.String())
}

func orderRow(id, customer, phone, total, status, date string) string {
	return padRight(id, 16) + " " +
		padRight(customer, 18) + " " +
		padRight(phone, 14) + " " +
		padRight(total, 10) + " " +
		padRight(status, 17) + " " +
		date
}

func formatOrderDate(o models.Order) string {
	if o.Date.IsZero() {
		return "-"
	}
	return o.Date.Local().Format(orderDateLayout)
}
