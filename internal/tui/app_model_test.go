package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/mock"
	"github.com/MKhiriev/go-shop-admin/internal/service"
	"github.com/MKhiriev/go-shop-admin/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	session  *mock.MockClientSessionService
	products *mock.MockClientProductService
	orders   *mock.MockClientOrderService
}

func newTestModel(t *testing.T, state models.SessionState) (appModel, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		session:  mock.NewMockClientSessionService(ctrl),
		products: mock.NewMockClientProductService(ctrl),
		orders:   mock.NewMockClientOrderService(ctrl),
	}
	services := &service.ClientServices{
		SessionService: deps.session,
		ProductService: deps.products,
		OrderService:   deps.orders,
	}

	m := newAppModel(context.Background(), services, state,
		models.NewAppBuildInfo("1.4.0", "2026-10-01", "a1b2c3d"), logger.Nop())
	m.toastTTL = time.Millisecond
	return m, deps
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok, "Update must return appModel")
	return am, cmd
}

// collect runs cmd and returns every message it produces, flattening
// batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func find[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	var zero T
	require.Failf(t, "message not produced", "want %T in %v", zero, msgs)
	return zero
}

func press(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(t *testing.T, m appModel, text string) appModel {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func authenticated() models.SessionState {
	return models.SessionState{Authenticated: true, Subject: "admin"}
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "p-1", Name: "Basmati Rice", Category: "Grains", Price: 120, MRP: 150, Unit: "1 kg", InStock: true},
		{ID: "p-2", Name: "Toor Dal", Category: "Pulses", Price: 140, MRP: 140, Unit: "1 kg", InStock: false},
	}
}

func sampleOrders() []models.Order {
	return []models.Order{
		{OrderID: "ORD-1", CustomerName: "Asha", CustomerPhone: "9876543210", TotalAmount: 560, Status: models.OrderPreparing},
		{OrderID: "ORD-2", CustomerName: "Ravi", CustomerPhone: "9123456780", TotalAmount: 90, Status: models.OrderReceived},
	}
}

func onProducts(t *testing.T) (appModel, testDeps) {
	t.Helper()
	m, deps := newTestModel(t, authenticated())
	m.products.setItems(sampleProducts())
	return m, deps
}

func TestAppModel_StartsOnLoginWithoutSession(t *testing.T) {
	m, _ := newTestModel(t, models.SessionState{})

	assert.Equal(t, screenLogin, m.currentScreen)
	assert.Contains(t, m.View(), "ADMIN LOGIN")
}

func TestAppModel_RestoredSessionLoadsProducts(t *testing.T) {
	m, deps := newTestModel(t, authenticated())
	deps.products.EXPECT().List(gomock.Any(), models.ProductFilter{}).Return(sampleProducts(), nil)

	require.Equal(t, screenProducts, m.currentScreen)
	assert.True(t, m.products.loading)

	loaded := find[productsLoadedMsg](t, collect(m.Init()))
	m, _ = update(t, m, loaded)

	assert.False(t, m.products.loading)
	assert.Len(t, m.products.items, 2)
	view := m.View()
	assert.Contains(t, view, "Basmati Rice")
	assert.Contains(t, view, "signed in as admin")
}

func TestAppModel_LoginFlow(t *testing.T) {
	m, deps := newTestModel(t, models.SessionState{})
	deps.session.EXPECT().Login(gomock.Any(), "admin", "s3cret").Return(authenticated(), nil)
	deps.products.EXPECT().List(gomock.Any(), models.ProductFilter{}).Return(sampleProducts(), nil)

	m = typeText(t, m, "admin")
	m, _ = update(t, m, press("tab"))
	m = typeText(t, m, "s3cret")
	m, cmd := update(t, m, press("enter"))
	assert.True(t, m.login.submitting)

	done := find[loginDoneMsg](t, collect(cmd))
	m, cmd = update(t, m, done)

	assert.Equal(t, screenProducts, m.currentScreen)
	require.NotNil(t, m.toast)
	assert.Equal(t, models.Success("Login successful"), *m.toast)

	loaded := find[productsLoadedMsg](t, collect(cmd))
	m, _ = update(t, m, loaded)
	assert.Len(t, m.products.items, 2)
}

func TestAppModel_LoginFailureShowsToast(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing credentials",
			err:  &service.ValidationError{Kind: service.ErrMissingRequiredField, Field: "username", Message: service.MsgEnterCreds},
			want: "Enter credentials",
		},
		{
			name: "rejected credentials",
			err:  &service.AuthError{Kind: service.ErrInvalidCredentials, Message: service.MsgInvalidLogin},
			want: "Invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, deps := newTestModel(t, models.SessionState{})
			deps.session.EXPECT().Login(gomock.Any(), "", "").Return(models.SessionState{}, tt.err)

			m, cmd := update(t, m, press("enter"))
			m, _ = update(t, m, find[loginDoneMsg](t, collect(cmd)))

			assert.Equal(t, screenLogin, m.currentScreen)
			assert.False(t, m.login.submitting)
			require.NotNil(t, m.toast)
			assert.Equal(t, models.Failure(tt.want), *m.toast)
		})
	}
}

func TestAppModel_FilterProducts(t *testing.T) {
	m, deps := onProducts(t)
	want := models.ProductFilter{Search: "rice", Category: "Grains"}
	deps.products.EXPECT().List(gomock.Any(), want).Return(sampleProducts()[:1], nil)

	m, _ = update(t, m, press("/"))
	require.True(t, m.products.filtering)

	m = typeText(t, m, " rice ")
	m, _ = update(t, m, press("tab"))
	m = typeText(t, m, "Grains")
	m, cmd := update(t, m, press("enter"))

	assert.False(t, m.products.filtering)
	assert.Equal(t, want, m.products.filter)

	m, _ = update(t, m, find[productsLoadedMsg](t, collect(cmd)))
	assert.Len(t, m.products.items, 1)
}

func TestAppModel_FilterEscKeepsPreviousFilter(t *testing.T) {
	m, _ := onProducts(t)
	m.products.filter = models.ProductFilter{Search: "dal"}

	m, _ = update(t, m, press("/"))
	m = typeText(t, m, "xyz")
	m, cmd := update(t, m, press("esc"))

	assert.Nil(t, cmd)
	assert.False(t, m.products.filtering)
	assert.Equal(t, models.ProductFilter{Search: "dal"}, m.products.filter)
}

func TestAppModel_CreateProduct(t *testing.T) {
	m, deps := onProducts(t)

	created := models.Product{ID: "p-3", Name: "Jaggery", Price: 80, MRP: 80, InStock: true}
	deps.products.EXPECT().Create(gomock.Any(), models.ProductDraft{
		Name:     "Jaggery",
		Category: "Sweeteners",
		Price:    80,
	}).Return(created, nil)
	deps.products.EXPECT().Current().Return(append(sampleProducts(), created))

	m, _ = update(t, m, press("n"))
	require.Equal(t, screenProductForm, m.currentScreen)
	assert.False(t, m.form.editing)
	assert.Len(t, m.form.inputs, 7)

	m = typeText(t, m, "Jaggery")
	m, _ = update(t, m, press("tab"))
	m = typeText(t, m, "Sweeteners")
	m, _ = update(t, m, press("tab"))
	m = typeText(t, m, "80")
	m, cmd := update(t, m, press("enter"))
	assert.True(t, m.form.submitting)

	m, _ = update(t, m, find[productSavedMsg](t, collect(cmd)))

	assert.Equal(t, screenProducts, m.currentScreen)
	assert.Len(t, m.products.items, 3)
	require.NotNil(t, m.toast)
	assert.Equal(t, models.Success("Product created"), *m.toast)
}

func TestAppModel_CreateProductRejectedKeepsForm(t *testing.T) {
	m, deps := onProducts(t)
	deps.products.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Product{},
		&service.ValidationError{Kind: service.ErrInvalidNumber, Field: "price", Message: service.MsgNamePriceReq})

	m, _ = update(t, m, press("n"))
	m = typeText(t, m, "Jaggery")
	m, cmd := update(t, m, press("enter"))
	m, _ = update(t, m, find[productSavedMsg](t, collect(cmd)))

	assert.Equal(t, screenProductForm, m.currentScreen)
	assert.False(t, m.form.submitting)
	assert.True(t, m.showError)
	assert.Equal(t, "Name and price required", m.errorOverlay.message)
	assert.Len(t, m.products.items, 2, "list is untouched")

	m, _ = update(t, m, press("esc"))
	assert.False(t, m.showError)
	assert.Equal(t, screenProductForm, m.currentScreen)
}

func TestAppModel_EditProductSendsChangedFields(t *testing.T) {
	m, deps := onProducts(t)
	original := sampleProducts()[1]

	price := 150.0
	inStock := true
	deps.products.EXPECT().Get(gomock.Any(), "p-2").Return(original, nil)
	deps.products.EXPECT().Update(gomock.Any(), "p-2", models.ProductPatch{
		Price:   &price,
		MRP:     &price,
		InStock: &inStock,
	}).Return(original, nil)
	deps.products.EXPECT().Current().Return(sampleProducts())

	m, _ = update(t, m, press("down"))
	m, cmd := update(t, m, press("e"))
	require.Equal(t, screenProductForm, m.currentScreen)
	assert.True(t, m.form.loading)

	m, _ = update(t, m, find[productLoadedMsg](t, collect(cmd)))
	require.False(t, m.form.loading)
	assert.Equal(t, "Toor Dal", m.form.inputs[fieldName].Value())
	assert.Equal(t, "No", m.form.inputs[fieldInStock].Value())

	m.form.inputs[fieldPrice].SetValue("150")
	m.form.inputs[fieldMRP].SetValue("150")
	m.form.inputs[fieldInStock].SetValue("yes")
	m, cmd = update(t, m, press("enter"))

	m, _ = update(t, m, find[productSavedMsg](t, collect(cmd)))
	assert.Equal(t, screenProducts, m.currentScreen)
	require.NotNil(t, m.toast)
	assert.Equal(t, models.Success("Updated"), *m.toast)
}

func TestAppModel_EditProductInvalidInStock(t *testing.T) {
	m, deps := onProducts(t)
	deps.products.EXPECT().Get(gomock.Any(), "p-1").Return(sampleProducts()[0], nil)

	m, cmd := update(t, m, press("enter"))
	m, _ = update(t, m, find[productLoadedMsg](t, collect(cmd)))

	m.form.inputs[fieldInStock].SetValue("maybe")
	m, cmd = update(t, m, press("enter"))

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.Equal(t, msgInvalidInStock, m.errorOverlay.message)
}

func TestAppModel_EditProductFetchFails(t *testing.T) {
	m, deps := onProducts(t)
	deps.products.EXPECT().Get(gomock.Any(), "p-1").Return(models.Product{},
		fmt.Errorf("%w: boom", service.ErrTransport))

	m, cmd := update(t, m, press("e"))
	m, _ = update(t, m, find[productLoadedMsg](t, collect(cmd)))

	assert.Equal(t, screenProducts, m.currentScreen)
	require.NotNil(t, m.toast)
	assert.Equal(t, models.Failure(service.MsgNetworkError), *m.toast)
}

func TestAppModel_DeleteProduct(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		m, deps := onProducts(t)
		deps.products.EXPECT().Delete(gomock.Any(), "p-1", true).Return(models.Ack{ID: "p-1"}, nil)
		deps.products.EXPECT().Current().Return(sampleProducts()[1:])

		m, cmd := update(t, m, press("d"))
		assert.Nil(t, cmd)
		require.True(t, m.showConfirm)
		assert.Contains(t, m.View(), `Delete product "Basmati Rice"?`)

		m, cmd = update(t, m, press("y"))
		assert.False(t, m.showConfirm)
		m, _ = update(t, m, find[productSavedMsg](t, collect(cmd)))

		assert.Len(t, m.products.items, 1)
		require.NotNil(t, m.toast)
		assert.Equal(t, models.Success("Deleted"), *m.toast)
	})

	for _, answer := range []string{"n", "esc"} {
		t.Run("declined with "+answer, func(t *testing.T) {
			// no Delete expectation: the service must not be called
			m, _ := onProducts(t)

			m, _ = update(t, m, press("d"))
			require.True(t, m.showConfirm)

			m, cmd := update(t, m, press(answer))
			assert.False(t, m.showConfirm)
			assert.Empty(t, m.confirm.productID)
			require.NotNil(t, m.toast)
			assert.Equal(t, models.Failure(service.MsgNotConfirmed), *m.toast)

			for _, msg := range collect(cmd) {
				assert.IsType(t, clearToastMsg{}, msg)
			}
			assert.Len(t, m.products.items, 2)
		})
	}
}

func TestAppModel_MutationWithFailedRefresh(t *testing.T) {
	m, _ := onProducts(t)
	m.currentScreen = screenProductForm
	m.form = newProductForm()

	err := fmt.Errorf("%w: timeout", service.ErrRefreshFailed)
	m, _ = update(t, m, productSavedMsg{message: "Product created", err: err})

	assert.Equal(t, screenProducts, m.currentScreen, "the mutation itself succeeded")
	assert.False(t, m.showError)
	require.NotNil(t, m.toast)
	assert.Equal(t, models.Failure(service.MsgRefreshFailed), *m.toast)
}

func TestAppModel_Orders(t *testing.T) {
	m, deps := onProducts(t)
	deps.orders.EXPECT().List(gomock.Any()).Return(sampleOrders(), nil)
	deps.orders.EXPECT().Policy().Return(models.PolicyForward)
	updated := sampleOrders()
	updated[0].Status = models.OrderOutForDelivery
	deps.orders.EXPECT().UpdateStatus(gomock.Any(), "ORD-1", models.OrderOutForDelivery).Return(updated[0], nil)
	deps.orders.EXPECT().Current().Return(updated)

	m, cmd := update(t, m, press("o"))
	require.Equal(t, screenOrders, m.currentScreen)
	m, _ = update(t, m, find[ordersLoadedMsg](t, collect(cmd)))
	assert.Contains(t, m.View(), "ORD-1")

	m, _ = update(t, m, press("s"))
	require.True(t, m.orders.picking)
	assert.Equal(t, []models.OrderStatus{
		models.OrderPreparing,
		models.OrderOutForDelivery,
		models.OrderDelivered,
	}, m.orders.choices)
	assert.Equal(t, models.OrderPreparing, m.orders.chosen())

	m, _ = update(t, m, press("down"))
	m, cmd = update(t, m, press("enter"))
	assert.False(t, m.orders.picking)

	m, _ = update(t, m, find[orderUpdatedMsg](t, collect(cmd)))
	assert.Equal(t, models.OrderOutForDelivery, m.orders.items[0].Status)
	require.NotNil(t, m.toast)
	assert.Equal(t, models.Success("Order updated"), *m.toast)
}

func TestAppModel_OrderSameStatusIsNoop(t *testing.T) {
	m, deps := newTestModel(t, authenticated())
	m.currentScreen = screenOrders
	m.orders.setItems(sampleOrders())
	deps.orders.EXPECT().Policy().Return(models.PolicyAny)

	m, _ = update(t, m, press("enter"))
	require.True(t, m.orders.picking)
	assert.Len(t, m.orders.choices, len(models.OrderStatuses))

	m, cmd := update(t, m, press("enter"))
	assert.Nil(t, cmd)
	assert.False(t, m.orders.picking)
}

func TestAppModel_RejectedTokenReturnsToLogin(t *testing.T) {
	m, deps := newTestModel(t, authenticated())
	m.currentScreen = screenOrders
	m.orders.setItems(sampleOrders())
	deps.orders.EXPECT().List(gomock.Any()).Return(nil, fmt.Errorf("%w: 401", service.ErrPermissionDenied))

	m, cmd := update(t, m, press("r"))
	loaded := find[ordersLoadedMsg](t, collect(cmd))

	// the session service notifies before the failing call returns
	m, _ = update(t, m, sessionChangedMsg{state: models.SessionState{}})
	assert.Equal(t, screenLogin, m.currentScreen)
	assert.Empty(t, m.orders.items)

	m, _ = update(t, m, loaded)
	require.NotNil(t, m.toast)
	assert.Equal(t, models.Failure(service.MsgLoginRequired), *m.toast)
	assert.Equal(t, screenLogin, m.currentScreen)
}

func TestAppModel_Logout(t *testing.T) {
	m, deps := onProducts(t)
	deps.session.EXPECT().Logout(gomock.Any()).Return(nil)

	m, cmd := update(t, m, press("L"))
	m, _ = update(t, m, find[logoutDoneMsg](t, collect(cmd)))

	assert.Equal(t, screenLogin, m.currentScreen)
	assert.False(t, m.session.Authenticated)
	assert.Empty(t, m.products.items)
	require.NotNil(t, m.toast)
	assert.Equal(t, models.Success("Logged out"), *m.toast)
}

func TestAppModel_ObserverMessagesReplaceLists(t *testing.T) {
	m, _ := onProducts(t)
	m.products.idx = 1

	m, _ = update(t, m, productsChangedMsg{items: sampleProducts()[:1]})
	assert.Len(t, m.products.items, 1)
	assert.Equal(t, 0, m.products.idx, "cursor is clamped to the new list")

	m, _ = update(t, m, ordersChangedMsg{items: sampleOrders()})
	assert.Len(t, m.orders.items, 2)
}

func TestAppModel_ToastExpires(t *testing.T) {
	m, _ := onProducts(t)

	first := m.notify(models.Success("one"))
	_ = m.notify(models.Success("two"))

	// the first timer fires after a newer toast replaced it
	m, _ = update(t, m, first())
	require.NotNil(t, m.toast)
	assert.Equal(t, "two", m.toast.Message)

	m, _ = update(t, m, clearToastMsg{seq: m.toastSeq})
	assert.Nil(t, m.toast)
}

func TestAppModel_BuildInfoWindow(t *testing.T) {
	m, _ := onProducts(t)

	m, _ = update(t, m, press("v"))
	require.Equal(t, screenBuildInfo, m.currentScreen)
	view := m.View()
	assert.Contains(t, view, "1.4.0")
	assert.Contains(t, view, "a1b2c3d")

	m, _ = update(t, m, press("esc"))
	assert.Equal(t, screenProducts, m.currentScreen)
}

func TestAppModel_CtrlCQuitsFromAnyScreen(t *testing.T) {
	m, _ := newTestModel(t, models.SessionState{})

	_, cmd := update(t, m, press("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_QuitKeyTypesIntoLoginForm(t *testing.T) {
	m, _ := newTestModel(t, models.SessionState{})

	m, _ = update(t, m, press("q"))
	assert.Equal(t, "q", m.login.inputs[0].Value())
}
