package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/service"
	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultToastTTL = 3500 * time.Millisecond

type screen int

const (
	screenLogin screen = iota
	screenProducts
	screenProductForm
	screenOrders
	screenBuildInfo
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	currentScreen screen
	// previousScreen is where esc returns to from the build info window.
	previousScreen screen
	session        models.SessionState

	login    loginModel
	products productListModel
	form     productFormModel
	orders   orderListModel
	spinner  spinner.Model

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel

	toast    *models.Notification
	toastSeq int
	toastTTL time.Duration
}

func newAppModel(ctx context.Context, services *service.ClientServices, state models.SessionState, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		logger:        log,
		currentScreen: screenLogin,
		session:       state,
		login:         newLoginModel(),
		products:      newProductListModel(),
		spinner:       s,
		toastTTL:      defaultToastTTL,
	}
	if state.Authenticated {
		m.currentScreen = screenProducts
		m.products.loading = true
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenProducts {
		return tea.Batch(m.spinner.Tick, m.cmdLoadProducts(m.products.filter))
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdDeleteProduct(m.confirm.productID, true)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.confirm = confirmModel{}
				cmd := m.notify(models.Failure(service.MsgNotConfirmed))
				return m, cmd
			}
			return m, nil
		}
	case sessionChangedMsg:
		return m.applySession(msg.state)
	case productsChangedMsg:
		m.products.setItems(msg.items)
		return m, nil
	case ordersChangedMsg:
		m.orders.setItems(msg.items)
		return m, nil
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			cmd := m.notifyError(msg.err)
			return m, cmd
		}
		m.session = msg.state
		m.login = newLoginModel()
		m.currentScreen = screenProducts
		m.products.loading = true
		toast := m.notify(models.Success("Login successful"))
		return m, tea.Batch(toast, m.spinner.Tick, m.cmdLoadProducts(m.products.filter))
	case logoutDoneMsg:
		m.toLogin()
		if msg.err != nil {
			cmd := m.notifyError(msg.err)
			return m, cmd
		}
		cmd := m.notify(models.Success("Logged out"))
		return m, cmd
	case productsLoadedMsg:
		m.products.loading = false
		if msg.err != nil {
			cmd := m.notifyError(msg.err)
			return m, cmd
		}
		m.products.setItems(msg.items)
		return m, nil
	case productLoadedMsg:
		if m.currentScreen != screenProductForm {
			return m, nil
		}
		if msg.err != nil {
			m.currentScreen = screenProducts
			cmd := m.notifyError(msg.err)
			return m, cmd
		}
		m.form = newEditProductForm(msg.product)
		return m, textinput.Blink
	case productSavedMsg:
		return m.handleProductSaved(msg)
	case ordersLoadedMsg:
		m.orders.loading = false
		if msg.err != nil {
			cmd := m.notifyError(msg.err)
			return m, cmd
		}
		m.orders.setItems(msg.items)
		return m, nil
	case orderUpdatedMsg:
		if msg.err != nil && !errors.Is(msg.err, service.ErrRefreshFailed) {
			cmd := m.notifyError(msg.err)
			return m, cmd
		}
		if msg.items != nil {
			m.orders.setItems(msg.items)
		}
		if msg.err != nil {
			cmd := m.notifyError(msg.err)
			return m, cmd
		}
		cmd := m.notify(models.Success("Order updated"))
		return m, cmd
	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.Update").Msg("clipboard write failed")
			cmd := m.notify(models.Failure("Copy failed"))
			return m, cmd
		}
		cmd := m.notify(models.Success(msg.what + " copied"))
		return m, cmd
	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil
	case spinner.TickMsg:
		if !m.products.loading && !m.orders.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenProducts:
		return m.updateProducts(msg)
	case screenProductForm:
		return m.updateProductForm(msg)
	case screenOrders:
		return m.updateOrders(msg)
	case screenBuildInfo:
		return m.updateBuildInfo(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenProducts:
		body = m.products.View(m.spinner.View())
	case screenProductForm:
		body = m.form.View()
	case screenOrders:
		body = m.orders.View(m.spinner.View())
	case screenBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	}

	if header := m.headerView(); header != "" {
		body = header + "\n\n" + body
	}
	if m.orders.picking && m.currentScreen == screenOrders {
		body += "\n\n" + m.orders.pickerView()
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}
	if m.toast != nil {
		body += "\n\n" + renderToast(*m.toast)
	}

	return appStyle.Render(body)
}

func (m appModel) headerView() string {
	if !m.session.Authenticated {
		return ""
	}

	parts := []string{titleStyle.Render("Shop Admin")}
	if m.session.Subject != "" {
		parts = append(parts, "signed in as "+clean(m.session.Subject))
	}
	if m.session.ExpiresAt != nil {
		parts = append(parts, "session until "+m.session.ExpiresAt.Local().Format(orderDateLayout))
	}
	return strings.Join(parts, " │ ")
}

func renderToast(n models.Notification) string {
	if n.Level == models.NotifyError {
		return toastErrorStyle.Render(n.Message)
	}
	return toastSuccessStyle.Render(n.Message)
}

// notify shows n until the toast TTL runs out or a newer toast replaces it.
func (m *appModel) notify(n models.Notification) tea.Cmd {
	n.Message = clean(n.Message)
	m.toast = &n
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(m.toastTTL, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}

func (m *appModel) notifyError(err error) tea.Cmd {
	return m.notify(models.Failure(service.OperatorMessage(err)))
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = clean(message)
}

// applySession follows session changes made outside the UI, e.g. a token
// the backend rejected during an authorized call.
func (m appModel) applySession(state models.SessionState) (tea.Model, tea.Cmd) {
	wasAuthenticated := m.session.Authenticated
	m.session = state
	if wasAuthenticated && !state.Authenticated && m.currentScreen != screenLogin {
		m.toLogin()
	}
	return m, nil
}

func (m *appModel) toLogin() {
	m.session = models.SessionState{}
	m.currentScreen = screenLogin
	m.login = newLoginModel()
	m.products = newProductListModel()
	m.orders = orderListModel{}
	m.form = productFormModel{}
	m.showConfirm = false
	m.showError = false
}

func (m appModel) handleProductSaved(msg productSavedMsg) (tea.Model, tea.Cmd) {
	m.form.submitting = false

	if msg.err != nil && !errors.Is(msg.err, service.ErrRefreshFailed) {
		if m.currentScreen == screenProductForm && !errors.Is(msg.err, service.ErrPermissionDenied) {
			m.showErrorf(service.OperatorMessage(msg.err))
			return m, nil
		}
		cmd := m.notifyError(msg.err)
		return m, cmd
	}

	if msg.items != nil {
		m.products.setItems(msg.items)
	}
	if m.currentScreen == screenProductForm {
		m.currentScreen = screenProducts
	}
	if msg.err != nil {
		cmd := m.notifyError(msg.err)
		return m, cmd
	}
	cmd := m.notify(models.Success(msg.message))
	return m, cmd
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down) && keyMsg.Type != tea.KeyRunes:
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up) && keyMsg.Type != tea.KeyRunes:
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			m.login.submitting = true
			username, password := m.login.credentials()
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateProducts(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.products.filtering {
		return m.updateProductFilter(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.products.idx > 0 {
			m.products.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.products.idx < len(m.products.items)-1 {
			m.products.idx++
		}
	case key.Matches(keyMsg, keys.filter):
		m.products = m.products.startFilter()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		m.products.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadProducts(m.products.filter))
	case key.Matches(keyMsg, keys.newItem):
		m.form = newProductForm()
		m.currentScreen = screenProductForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit), key.Matches(keyMsg, keys.enter):
		product, ok := m.products.current()
		if !ok {
			return m, nil
		}
		m.form = newLoadingProductForm()
		m.currentScreen = screenProductForm
		return m, m.cmdGetProduct(product.ID)
	case key.Matches(keyMsg, keys.delete):
		product, ok := m.products.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm = confirmModel{
			message:   fmt.Sprintf("Delete product %q?", clean(product.Name)),
			productID: product.ID,
		}
	case key.Matches(keyMsg, keys.copy):
		product, ok := m.products.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(product.ID, "Product id")
	case key.Matches(keyMsg, keys.orders), key.Matches(keyMsg, keys.tab):
		m.currentScreen = screenOrders
		m.orders.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadOrders())
	case key.Matches(keyMsg, keys.version):
		m.previousScreen = screenProducts
		m.currentScreen = screenBuildInfo
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateProductFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.products = m.products.stopFilter()
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.products = m.products.switchFilterFocus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.products.filter = m.products.pendingFilter()
			m.products = m.products.stopFilter()
			m.products.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdLoadProducts(m.products.filter))
		}
	}

	var cmd tea.Cmd
	focus := m.products.filterFocus
	m.products.filterInputs[focus], cmd = m.products.filterInputs[focus].Update(msg)
	return m, cmd
}

func (m appModel) updateProductForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenProducts
		return m, nil
	}
	if m.form.loading {
		return m, nil
	}

	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			if !m.form.editing {
				m.form.submitting = true
				return m, m.cmdCreateProduct(m.form.toDraft())
			}
			patch, valid := m.form.toPatch()
			if !valid {
				m.showErrorf(msgInvalidInStock)
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdUpdateProduct(m.form.original.ID, patch)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateOrders(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.orders.picking {
		switch {
		case key.Matches(keyMsg, keys.up):
			if m.orders.choiceIdx > 0 {
				m.orders.choiceIdx--
			}
		case key.Matches(keyMsg, keys.down):
			if m.orders.choiceIdx < len(m.orders.choices)-1 {
				m.orders.choiceIdx++
			}
		case key.Matches(keyMsg, keys.esc):
			m.orders.picking = false
		case key.Matches(keyMsg, keys.enter):
			m.orders.picking = false
			order, ok := m.orders.current()
			status := m.orders.chosen()
			if !ok || status == "" || status == order.Status {
				return m, nil
			}
			return m, m.cmdUpdateOrderStatus(order.OrderID, status)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.orders.idx > 0 {
			m.orders.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.orders.idx < len(m.orders.items)-1 {
			m.orders.idx++
		}
	case key.Matches(keyMsg, keys.status), key.Matches(keyMsg, keys.enter):
		if _, ok := m.orders.current(); !ok {
			return m, nil
		}
		m.orders = m.orders.startPicking(m.services.OrderService.Policy())
	case key.Matches(keyMsg, keys.copy):
		order, ok := m.orders.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(order.OrderID, "Order id")
	case key.Matches(keyMsg, keys.refresh):
		m.orders.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadOrders())
	case key.Matches(keyMsg, keys.products), key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenProducts
	case key.Matches(keyMsg, keys.version):
		m.previousScreen = screenOrders
		m.currentScreen = screenBuildInfo
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateBuildInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.version):
		m.currentScreen = m.previousScreen
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		state, err := svc.Login(ctx, username, password)
		return loginDoneMsg{state: state, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		return logoutDoneMsg{err: svc.Logout(ctx)}
	}
}

func (m appModel) cmdLoadProducts(filter models.ProductFilter) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProductService
	return func() tea.Msg {
		items, err := svc.List(ctx, filter)
		return productsLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdGetProduct(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProductService
	return func() tea.Msg {
		product, err := svc.Get(ctx, id)
		return productLoadedMsg{product: product, err: err}
	}
}

func (m appModel) cmdCreateProduct(draft models.ProductDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProductService
	return func() tea.Msg {
		_, err := svc.Create(ctx, draft)
		return productSavedMsg{message: "Product created", items: currentIfOK(svc, err), err: err}
	}
}

func (m appModel) cmdUpdateProduct(id string, patch models.ProductPatch) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProductService
	return func() tea.Msg {
		_, err := svc.Update(ctx, id, patch)
		return productSavedMsg{message: "Updated", items: currentIfOK(svc, err), err: err}
	}
}

func (m appModel) cmdDeleteProduct(id string, confirmed bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProductService
	return func() tea.Msg {
		_, err := svc.Delete(ctx, id, confirmed)
		return productSavedMsg{message: "Deleted", items: currentIfOK(svc, err), err: err}
	}
}

func (m appModel) cmdLoadOrders() tea.Cmd {
	ctx := m.ctx
	svc := m.services.OrderService
	return func() tea.Msg {
		items, err := svc.List(ctx)
		return ordersLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdUpdateOrderStatus(id string, status models.OrderStatus) tea.Cmd {
	ctx := m.ctx
	svc := m.services.OrderService
	return func() tea.Msg {
		order, err := svc.UpdateStatus(ctx, id, status)
		msg := orderUpdatedMsg{order: order, err: err}
		if err == nil {
			msg.items = svc.Current()
		}
		return msg
	}
}

func currentIfOK(svc service.ClientProductService, err error) []models.Product {
	if err != nil {
		return nil
	}
	return svc.Current()
}

func cmdCopyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{what: what, err: err}
		}
		return copiedMsg{what: what}
	}
}
