// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable the agent reads, so
// AGENT_MAX_PASS_TRIES is looked up as TOKEN_AGENT_AGENT_MAX_PASS_TRIES.
const EnvPrefix = "TOKEN_AGENT_"

// parseEnv fills cfg from the environment following the `env` and
// `envPrefix` tags of [StructuredConfig], under [EnvPrefix]. Unset variables
// leave their fields zero.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
