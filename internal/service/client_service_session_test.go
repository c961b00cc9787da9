package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/adapter"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/mock"
	"github.com/MKhiriev/go-shop-admin/internal/store"
	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSessionSvc wires a session service to a mocked adapter and store.
func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (*clientSessionService, *mock.MockServerAdapter, *mock.MockSessionStore) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockSessionStore(ctrl)

	svc := NewClientSessionService(mockAdapter, mockStore, logger.Nop()).(*clientSessionService)
	return svc, mockAdapter, mockStore
}

func signedTestToken(t *testing.T, subject string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedTestToken(t, "admin", exp)

	gomock.InOrder(
		mockAdapter.EXPECT().
			Login(ctx, models.Credentials{Username: "admin", Password: "secret"}).
			Return(token, nil),
		mockStore.EXPECT().SaveToken(ctx, token).Return(nil),
	)

	var observed []models.SessionState
	svc.Subscribe(func(s models.SessionState) { observed = append(observed, s) })

	state, err := svc.Login(ctx, " admin ", "secret")
	require.NoError(t, err)

	assert.True(t, state.Authenticated)
	assert.Equal(t, "admin", state.Subject)
	require.NotNil(t, state.ExpiresAt)
	assert.True(t, exp.Equal(*state.ExpiresAt))

	assert.True(t, svc.HasToken())
	assert.Equal(t, "Bearer "+token, svc.AuthHeader())
	require.Len(t, observed, 1)
	assert.True(t, observed[0].Authenticated)
}

func TestClientSessionService_Login_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return("", &adapter.HTTPError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Invalid credentials",
		Kind:       adapter.ErrUnauthorized,
		FromBody:   true,
	})

	state, err := svc.Login(ctx, "admin", "wrong")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrAuth)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, state.Authenticated)
	assert.False(t, svc.HasToken())
	assert.Equal(t, "Invalid credentials", OperatorMessage(err))
}

func TestClientSessionService_Login_NetworkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).
		Return("", fmt.Errorf("%w: login: %w", adapter.ErrRequestFailed, errors.New("connection refused")))

	_, err := svc.Login(ctx, "admin", "secret")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, svc.HasToken())
}

func TestClientSessionService_Login_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return("", nil)

	_, err := svc.Login(ctx, "admin", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, svc.HasToken())
}

func TestClientSessionService_Login_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no adapter expectations: any request fails the test
	svc, _, _ := newTestSessionSvc(t, ctrl)

	_, err := svc.Login(context.Background(), "  ", "secret")
	assert.ErrorIs(t, err, ErrMissingRequiredField)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(context.Background(), "admin", "")
	assert.ErrorIs(t, err, ErrMissingRequiredField)
	assert.Equal(t, MsgEnterCreds, OperatorMessage(err))
}

func TestClientSessionService_Login_PersistFailureKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return("T1", nil)
	mockStore.EXPECT().SaveToken(ctx, "T1").Return(errors.New("disk full"))

	state, err := svc.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	assert.True(t, state.Authenticated)
}

// ── Logout / Invalidate ─────────────────────────────────────────────────────

func TestClientSessionService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	svc.setToken("T1")

	mockStore.EXPECT().DeleteToken(ctx).Return(nil)

	var observed []models.SessionState
	svc.Subscribe(func(s models.SessionState) { observed = append(observed, s) })

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, svc.HasToken())
	assert.Empty(t, svc.AuthHeader())
	require.Len(t, observed, 1)
	assert.False(t, observed[0].Authenticated)
}

func TestClientSessionService_Logout_StoreErrorStillClearsMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	svc.setToken("T1")

	mockStore.EXPECT().DeleteToken(ctx).Return(errors.New("locked"))

	assert.Error(t, svc.Logout(ctx))
	assert.False(t, svc.HasToken())
}

func TestClientSessionService_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	// without a token nothing happens
	svc.Invalidate(ctx, "401")

	svc.setToken("T1")
	mockStore.EXPECT().DeleteToken(ctx).Return(nil)
	svc.Invalidate(ctx, "401")
	assert.False(t, svc.HasToken())
}

// ── Restore / Persist ────────────────────────────────────────────────────────

func TestClientSessionService_Restore_NoNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	// the adapter mock has no expectations: a request would fail the test
	svc, _, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().LoadToken(ctx).Return("opaque-token", nil)

	state, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, state.Authenticated)
	assert.Empty(t, state.Subject)
	assert.Nil(t, state.ExpiresAt)
	assert.Equal(t, "Bearer opaque-token", svc.AuthHeader())
}

func TestClientSessionService_Restore_NothingStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().LoadToken(ctx).Return("", store.ErrLocalSessionNotFound)

	state, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, state.Authenticated)
}

func TestClientSessionService_Restore_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().LoadToken(ctx).Return("", store.ErrScanningRow)

	_, err := svc.Restore(ctx)
	assert.ErrorIs(t, err, store.ErrScanningRow)
	assert.False(t, svc.HasToken())
}

func TestClientSessionService_Persist(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	// no token: no write
	require.NoError(t, svc.Persist(ctx))

	svc.setToken("T1")
	mockStore.EXPECT().SaveToken(ctx, "T1").Return(nil)
	require.NoError(t, svc.Persist(ctx))
}

func TestClientSessionService_RoundTripThroughMemoryStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	sessionStore := store.NewMemorySessionStore()
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return("T1", nil)

	first := NewClientSessionService(mockAdapter, sessionStore, logger.Nop())
	_, err := first.Login(ctx, "admin", "secret")
	require.NoError(t, err)

	// next run
	second := NewClientSessionService(mockAdapter, sessionStore, logger.Nop())
	state, err := second.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, state.Authenticated)
	assert.Equal(t, "Bearer T1", second.AuthHeader())

	require.NoError(t, second.Logout(ctx))
	third := NewClientSessionService(mockAdapter, sessionStore, logger.Nop())
	state, err = third.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, state.Authenticated)
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, models.SessionState{}, stateOf(""))

	state := stateOf("not.a.jwt")
	assert.True(t, state.Authenticated)
	assert.Empty(t, state.Subject)

	// an expired JWT is still reported; validation is the backend's job
	exp := time.Now().Add(-time.Hour).Truncate(time.Second)
	state = stateOf(signedTestToken(t, "ops", exp))
	assert.True(t, state.Authenticated)
	assert.Equal(t, "ops", state.Subject)
}
