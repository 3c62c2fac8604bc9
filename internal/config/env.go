// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// legacyEnv holds variable names kept for deployments of the previous
// version of the service.
type legacyEnv struct {
	JWTSecret string `env:"JWT_SECRET"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. When APP_TOKEN_SIGN_KEY is unset, JWT_SECRET is used instead.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.App.TokenSignKey != "" {
		return nil
	}

	var legacy legacyEnv
	if err := env.Parse(&legacy); err != nil {
		return fmt.Errorf("error getting legacy env configs: %w", err)
	}
	cfg.App.TokenSignKey = legacy.JWTSecret

	return nil
}
