package config

import "time"

// Built-in values used when no source sets a field.
const (
	DefaultAPIAddress       = "http://localhost:8080"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultSessionDSN       = "admin_session.db"
	DefaultPersistInterval  = 2 * time.Second
	DefaultOrderTransitions = TransitionsAny

	DefaultStubAddress       = "localhost:8080"
	DefaultStubAdminUser     = "admin"
	DefaultStubAdminPassword = "admin"
	DefaultStubSignKey       = "dev-sign-key"
	DefaultStubIssuer        = "shop-stub-api"
	DefaultStubTokenDuration = 12 * time.Hour
)

// Order transition policy names accepted in App.OrderTransitions.
const (
	TransitionsAny     = "any"
	TransitionsForward = "forward"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			OrderTransitions: DefaultOrderTransitions,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAPIAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultSessionDSN},
		},
		Workers: Workers{
			PersistInterval: DefaultPersistInterval,
		},
		Stub: Stub{
			HTTPAddress:   DefaultStubAddress,
			AdminUser:     DefaultStubAdminUser,
			AdminPassword: DefaultStubAdminPassword,
			TokenSignKey:  DefaultStubSignKey,
			TokenIssuer:   DefaultStubIssuer,
			TokenDuration: DefaultStubTokenDuration,
		},
	}
}
