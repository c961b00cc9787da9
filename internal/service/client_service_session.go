package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/adapter"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/store"
	"github.com/MKhiriev/go-shop-admin/models"
	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

type clientSessionService struct {
	adapter adapter.ServerAdapter
	store   store.SessionStore
	logger  *logger.Logger

	mu    sync.RWMutex
	token string

	// persistMu orders durable writes so a periodic flush can never
	// resurrect a token that logout has just deleted.
	persistMu sync.Mutex

	observers observers[models.SessionState]
}

// NewClientSessionService creates a session service with no token. Call
// Restore to adopt a token from a previous run.
func NewClientSessionService(serverAdapter adapter.ServerAdapter, sessionStore store.SessionStore, log *logger.Logger) ClientSessionService {
	return &clientSessionService{
		adapter: serverAdapter,
		store:   sessionStore,
		logger:  log,
	}
}

func (s *clientSessionService) Login(ctx context.Context, username, password string) (models.SessionState, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return s.State(), missingField("username", MsgEnterCreds)
	}
	if password == "" {
		return s.State(), missingField("password", MsgEnterCreds)
	}

	token, err := s.adapter.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Login").Str("username", username).Msg("login rejected")
		return s.State(), loginError(err)
	}
	if token == "" {
		s.logger.Warn().Str("func", "clientSessionService.Login").Msg("backend returned an empty token")
		return s.State(), &AuthError{Kind: ErrInvalidCredentials, Message: MsgInvalidLogin}
	}

	s.setToken(token)
	if err = s.Persist(ctx); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Login").Msg("token kept in memory only")
	}

	state := s.State()
	s.logger.Info().Str("subject", state.Subject).Msg("operator logged in")
	s.observers.notify(state)
	return state, nil
}

func loginError(err error) error {
	if errors.Is(err, adapter.ErrRequestFailed) {
		return &AuthError{Kind: ErrNetworkFailure, Message: MsgNetworkError, Err: err}
	}

	msg := MsgInvalidLogin
	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) && httpErr.FromBody {
		msg = httpErr.Message
	}
	return &AuthError{Kind: ErrInvalidCredentials, Message: msg, Err: err}
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.persistMu.Lock()
	s.setToken("")
	err := s.store.DeleteToken(ctx)
	s.persistMu.Unlock()

	s.observers.notify(s.State())
	if err != nil {
		return fmt.Errorf("remove stored token: %w", err)
	}
	return nil
}

func (s *clientSessionService) Restore(ctx context.Context) (models.SessionState, error) {
	token, err := s.store.LoadToken(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return s.State(), nil
	}
	if err != nil {
		return s.State(), fmt.Errorf("load stored token: %w", err)
	}

	s.setToken(token)
	state := s.State()
	s.logger.Info().Str("subject", state.Subject).Msg("session restored")
	s.observers.notify(state)
	return state, nil
}

func (s *clientSessionService) Persist(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	token := s.currentToken()
	if token == "" {
		return nil
	}
	if err := s.store.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *clientSessionService) Invalidate(ctx context.Context, reason string) {
	if !s.HasToken() {
		return
	}
	s.logger.Warn().Str("reason", reason).Msg("backend rejected the session token")
	if err := s.Logout(ctx); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Invalidate").Msg("logout after rejection failed")
	}
}

func (s *clientSessionService) AuthHeader() string {
	token := s.currentToken()
	if token == "" {
		return ""
	}
	return bearerPrefix + token
}

func (s *clientSessionService) HasToken() bool {
	return s.currentToken() != ""
}

func (s *clientSessionService) State() models.SessionState {
	return stateOf(s.currentToken())
}

func (s *clientSessionService) Subscribe(fn func(models.SessionState)) {
	s.observers.subscribe(fn)
}

func (s *clientSessionService) setToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *clientSessionService) currentToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// stateOf peeks at JWT claims without verifying the signature. Opaque
// tokens yield an authenticated state with no subject or expiry.
func stateOf(token string) models.SessionState {
	if token == "" {
		return models.SessionState{}
	}

	state := models.SessionState{Authenticated: true}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return state
	}

	state.Subject = claims.Subject
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time.In(time.Local)
		state.ExpiresAt = &exp
	}
	return state
}
