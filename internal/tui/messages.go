package tui

import (
	"github.com/MKhiriev/go-shop-admin/models"
)

// Observer bridges: sent by [TUI.Run] whenever a service notifies.
type sessionChangedMsg struct {
	state models.SessionState
}

type productsChangedMsg struct {
	items []models.Product
}

type ordersChangedMsg struct {
	items []models.Order
}

type loginDoneMsg struct {
	state models.SessionState
	err   error
}

type logoutDoneMsg struct {
	err error
}

type productsLoadedMsg struct {
	items []models.Product
	err   error
}

type productLoadedMsg struct {
	product models.Product
	err     error
}

type productSavedMsg struct {
	message string
	items   []models.Product
	err     error
}

type ordersLoadedMsg struct {
	items []models.Order
	err   error
}

type orderUpdatedMsg struct {
	order models.Order
	items []models.Order
	err   error
}

type copiedMsg struct {
	what string
	err  error
}

type clearToastMsg struct {
	seq int
}
