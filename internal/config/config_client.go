package config

import (
	"fmt"
	"time"
)

// ClientApp holds console behaviour settings.
type ClientApp struct {
	// OrderTransitions is the order status policy name ("any" or "forward").
	OrderTransitions string
	// LogFile is the console log destination.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests, zero for none.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite path of the session store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PersistInterval is the periodic session flush cadence; negative
	// disables the periodic flush.
	PersistInterval time.Duration
}

// ClientConfig is the console configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the console view of the merged
// structured configuration. args are the command-line arguments without the
// program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			OrderTransitions: cfg.App.OrderTransitions,
			LogFile:          cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{PersistInterval: cfg.Workers.PersistInterval},
	}

	return clientCfg, clientCfg.validate()
}

// StubConfig is the configuration of the development backend.
type StubConfig struct {
	HTTPAddress   string
	AdminUser     string
	AdminPassword string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	SeedDemoData  bool
}

// GetStubConfig builds and validates the stub backend view of the merged
// structured configuration.
func GetStubConfig(args []string) (*StubConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := &StubConfig{
		HTTPAddress:   cfg.Stub.HTTPAddress,
		AdminUser:     cfg.Stub.AdminUser,
		AdminPassword: cfg.Stub.AdminPassword,
		TokenSignKey:  cfg.Stub.TokenSignKey,
		TokenIssuer:   cfg.Stub.TokenIssuer,
		TokenDuration: cfg.Stub.TokenDuration,
		SeedDemoData:  cfg.Stub.SeedDemoData,
	}

	return stubCfg, stubCfg.validate()
}
