package stubapi

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-shop-admin/internal/config"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/utils"
	"github.com/MKhiriev/go-shop-admin/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete AuthService. The backend knows exactly one
// operator account, configured at start-up.
type authService struct {
	adminUser string

	// passwordHash is the bcrypt hash of the configured admin password. The
	// plaintext is dropped right after hashing.
	passwordHash []byte

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService hashes the admin password from cfg and returns a service
// that accepts only that account.
func NewAuthService(cfg *config.StubConfig, log *logger.Logger) (AuthService, error) {
	if cfg.AdminPassword == "" {
		return nil, ErrAdminPasswordNotSpecified
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing admin password: %w", err)
	}

	return &authService{
		adminUser:     cfg.AdminUser,
		passwordHash:  hash,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        log,
	}, nil
}

// Login checks creds against the admin account and issues a token whose
// subject is the username.
//
// Returns ErrInvalidDataProvided when either field is blank and
// ErrWrongCredentials on mismatch. The password is never logged.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		log.Error().Str("username", username).Msg("invalid credentials provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	userMatches := subtle.ConstantTimeCompare([]byte(username), []byte(a.adminUser)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(creds.Password))
	if !userMatches || passwordErr != nil {
		log.Warn().Str("username", username).Msg("wrong username or password")
		return models.Token{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("username", username).Msg("operator logged in")
	return token, nil
}

// ParseToken verifies a bearer token issued by Login. Any failure is reported
// as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
