// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// admin console and the stub backend. It is populated by merging defaults,
// an optional JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds console behaviour settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the address and timeout of the remote REST API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local durable session store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Stub holds settings of the in-memory development backend.
	Stub Stub `envPrefix:"STUB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds console-level settings.
type App struct {
	// OrderTransitions selects the order status transition policy:
	// "any" (every status reachable from every other) or "forward".
	// Env: APP_ORDER_TRANSITIONS
	OrderTransitions string `env:"ORDER_TRANSITIONS"`

	// LogFile is where the console writes its log. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the backend, with or without scheme
	// (e.g. "http://localhost:8080" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request. Zero leaves the
	// transport without a client-side timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the durable local storage settings.
type Storage struct {
	// DB holds the session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the local SQLite settings.
type DB struct {
	// DSN is the SQLite file path holding the session key.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds background job settings.
type Workers struct {
	// PersistInterval is the cadence of the periodic session flush.
	// A negative value turns the periodic flush off; login and logout still
	// persist immediately.
	// Env: WORKERS_PERSIST_INTERVAL
	PersistInterval time.Duration `env:"PERSIST_INTERVAL"`
}

// Stub holds the settings of the development backend.
type Stub struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: STUB_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// AdminUser and AdminPassword are the only accepted credentials.
	// Env: STUB_ADMIN_USER, STUB_ADMIN_PASSWORD
	AdminUser     string `env:"ADMIN_USER"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// TokenSignKey signs issued JWTs.
	// Env: STUB_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued JWTs.
	// Env: STUB_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued JWTs.
	// Env: STUB_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SeedDemoData fills the catalog and order book with sample records.
	// Env: STUB_SEED_DEMO_DATA
	SeedDemoData bool `env:"SEED_DEMO_DATA"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. Priority, lowest first:
//  1. Built-in defaults
//  2. JSON file (path resolved from env or flags)
//  3. Environment variables
//  4. Command-line flags (args)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
