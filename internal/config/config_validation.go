// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-token-agent/internal/version"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	v := version.Parse(cfg.App.Version)
	if v == nil {
		return fmt.Errorf("%w: version %q is not a semantic version", ErrInvalidAppConfigs, cfg.App.Version)
	}
	// envelopes written with an older version would be read back as legacy
	if !version.IsCurrentFormat(v) {
		return fmt.Errorf("%w: version %q is below %s", ErrInvalidAppConfigs, cfg.App.Version, version.MinCurrentFormat)
	}

	if cfg.Agent.MaxPassTries < 1 {
		return fmt.Errorf("%w: max pass tries must be positive", ErrInvalidAgentConfigs)
	}
	if cfg.Agent.EvictInterval <= 0 {
		return fmt.Errorf("%w: evict interval must be positive", ErrInvalidAgentConfigs)
	}
	if cfg.Agent.LockHashCost < bcrypt.MinCost || cfg.Agent.LockHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: lock hash cost must be in [%d, %d]", ErrInvalidAgentConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	switch cfg.Prompt.Mode {
	case PromptModeTerminal, PromptModeTUI:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidPromptConfigs, cfg.Prompt.Mode)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
