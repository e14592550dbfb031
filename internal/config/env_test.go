// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		EnvPrefix + "CONFIG": "/path/to/config.json",

		EnvPrefix + "APP_VERSION": "2.3.0",

		EnvPrefix + "AGENT_MAX_PASS_TRIES": "5",
		EnvPrefix + "AGENT_EVICT_INTERVAL": "30s",
		EnvPrefix + "AGENT_LOCK_HASH_COST": "12",

		EnvPrefix + "STORAGE_DSN":        "/var/lib/agent/accounts.db",
		EnvPrefix + "STORAGE_CONFIG_DIR": "/var/lib/agent",

		EnvPrefix + "PROMPT_MODE": "tui",

		EnvPrefix + "LOG_LEVEL": "debug",
		EnvPrefix + "LOG_FILE":  "/var/log/agent.log",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "2.3.0", cfg.App.Version)
	assert.Equal(t, 5, cfg.Agent.MaxPassTries)
	assert.Equal(t, 30*time.Second, cfg.Agent.EvictInterval)
	assert.Equal(t, 12, cfg.Agent.LockHashCost)
	assert.Equal(t, "/var/lib/agent/accounts.db", cfg.Storage.DSN)
	assert.Equal(t, "/var/lib/agent", cfg.Storage.ConfigDir)
	assert.Equal(t, "tui", cfg.Prompt.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/agent.log", cfg.Log.File)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_IgnoresUnprefixed(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CONFIG", "/etc/other.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvPrefix + "AGENT_EVICT_INTERVAL", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

var configEnvVars = []string{
	EnvPrefix + "CONFIG",
	EnvPrefix + "APP_VERSION",
	EnvPrefix + "AGENT_MAX_PASS_TRIES", EnvPrefix + "AGENT_EVICT_INTERVAL", EnvPrefix + "AGENT_LOCK_HASH_COST",
	EnvPrefix + "STORAGE_DSN", EnvPrefix + "STORAGE_CONFIG_DIR",
	EnvPrefix + "PROMPT_MODE",
	EnvPrefix + "LOG_LEVEL", EnvPrefix + "LOG_FILE",
}

// clearEnvVars unsets every variable read by the config for the duration of
// the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
