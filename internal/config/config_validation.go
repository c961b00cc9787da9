// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks settings shared by every binary.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.OrderTransitions {
	case "", TransitionsAny, TransitionsForward:
	default:
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.OrderTransitions != TransitionsAny && cfg.App.OrderTransitions != TransitionsForward {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *StubConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidStubConfigs
	}

	if cfg.AdminUser == "" || cfg.AdminPassword == "" {
		return ErrInvalidStubConfigs
	}

	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration <= 0 {
		return ErrInvalidStubConfigs
	}

	return nil
}
