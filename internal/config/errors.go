package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing API address or a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty session database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown order transition policy).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStubConfigs indicates an unusable stub backend configuration
	// (missing credentials, signing key or listen address).
	ErrInvalidStubConfigs = errors.New("invalid stub configuration")
)
