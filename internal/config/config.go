// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-token-agent application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable name is additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Agent holds settings of the credential-caching agent.
	Agent Agent `envPrefix:"AGENT_"`

	// Storage holds configuration for the account-config database and the
	// directory of encrypted files.
	Storage Storage `envPrefix:"STORAGE_"`

	// Prompt selects how passwords are read from the user.
	Prompt Prompt `envPrefix:"PROMPT_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the TOKEN_AGENT_CONFIG environment variable or the
	// -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version written into the version line of new
	// envelopes (e.g. "2.1.0"). Defaults to the build version.
	// Env: TOKEN_AGENT_APP_VERSION
	Version string `env:"VERSION"`
}

// Agent holds settings of the credential-caching agent.
type Agent struct {
	// MaxPassTries is how many times a password is prompted before
	// decryption gives up.
	// Env: TOKEN_AGENT_AGENT_MAX_PASS_TRIES
	MaxPassTries int `env:"MAX_PASS_TRIES"`

	// EvictInterval is how often accounts past their lifetime are evicted.
	// Env: TOKEN_AGENT_AGENT_EVICT_INTERVAL
	EvictInterval time.Duration `env:"EVICT_INTERVAL"`

	// LockHashCost is the bcrypt cost of the lock password hash.
	// Env: TOKEN_AGENT_AGENT_LOCK_HASH_COST
	LockHashCost int `env:"LOCK_HASH_COST"`
}

// Storage holds persistence settings.
type Storage struct {
	// DSN is the SQLite database file holding encrypted account configs.
	// An empty DSN opens an in-memory database.
	// Env: TOKEN_AGENT_STORAGE_DSN
	DSN string `env:"DSN"`

	// ConfigDir is the directory of encrypted agent files.
	// Env: TOKEN_AGENT_STORAGE_CONFIG_DIR
	ConfigDir string `env:"CONFIG_DIR"`
}

// Prompt holds password prompt settings.
type Prompt struct {
	// Mode is "terminal" for a plain no-echo prompt or "tui" for the
	// full-screen prompt.
	// Env: TOKEN_AGENT_PROMPT_MODE
	Mode string `env:"MODE"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: TOKEN_AGENT_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is an optional log file; stderr is used when empty.
	// Env: TOKEN_AGENT_LOG_FILE
	File string `env:"FILE"`
}

// Prompt modes.
const (
	PromptModeTerminal = "terminal"
	PromptModeTUI      = "tui"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win, later ones only fill fields that are still zero):
//  1. Command-line flags bound with [BindFlags] (flags may be nil)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(flags *FlagValues) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
