package tui

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/service"
	"github.com/MKhiriev/go-shop-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoServices = errors.New("tui: client services are not specified")

// TUI is the terminal front end of the admin console. It renders the
// session, catalog and order state held by the client services and turns
// key presses into service calls.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	program atomic.Pointer[tea.Program]
	options []tea.ProgramOption
}

// New creates the UI and subscribes it to every client service, so that
// state changes made outside the UI (a rejected token, a refreshed list)
// are rendered while [TUI.Run] is active.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}

	t := &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    log,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}

	services.SessionService.Subscribe(func(state models.SessionState) {
		t.send(sessionChangedMsg{state: state})
	})
	services.ProductService.Subscribe(func(items []models.Product) {
		t.send(productsChangedMsg{items: items})
	})
	services.OrderService.Subscribe(func(items []models.Order) {
		t.send(ordersChangedMsg{items: items})
	})

	return t, nil
}

// Run shows the UI until the operator quits or ctx is cancelled. The first
// screen is the product list when a session was restored, the login form
// otherwise.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.services.SessionService.State(), t.buildInfo, t.logger)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	p := tea.NewProgram(model, opts...)

	t.program.Store(p)
	defer t.program.Store(nil)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			t.logger.Info().Msg("ui closed on shutdown")
			return nil
		}
		return err
	}
	return nil
}

func (t *TUI) send(msg tea.Msg) {
	if p := t.program.Load(); p != nil {
		p.Send(msg)
	}
}
