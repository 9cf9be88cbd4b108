// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environment variables. The mapping lives in the
// `env` and `envPrefix` tags on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
