package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func parsedFlags(t *testing.T, args ...string) *FlagValues {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return v
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config without
// defaults is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_DefaultsOnly verifies the built-in defaults.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
	assert.Equal(t, 3, cfg.Agent.MaxPassTries)
	assert.Equal(t, time.Minute, cfg.Agent.EvictInterval)
	assert.Equal(t, PromptModeTerminal, cfg.Prompt.Mode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Storage.ConfigDir)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that the first non-zero value of a
// field is kept and later sources only fill gaps.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Agent: Agent{MaxPassTries: 5}},
		&StructuredConfig{Agent: Agent{MaxPassTries: 7}, Log: Log{Level: "debug"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Agent.MaxPassTries)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, time.Minute, cfg.Agent.EvictInterval)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one config.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder().withEnv()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a malformed variable is
// collected into b.err.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvPrefix+"AGENT_MAX_PASS_TRIES", "many")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_NilIsNoOp verifies that nil flag values are skipped.
func TestWithFlags_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that nothing is appended without
// a JSON path.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file
// is parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"agent": map[string]any{"max_pass_tries": 4},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, 4, b.configs[1].Agent.MaxPassTries)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file is
// reported.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesFirstPath verifies that the highest-priority source
// naming a JSON file decides which file is read.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"level": "warn"}})
	second := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"level": "error"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "warn", b.configs[2].Log.Level)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies flags > env > JSON > defaults.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, map[string]any{
		"agent":  map[string]any{"max_pass_tries": 9, "evict_interval": "5m"},
		"prompt": map[string]any{"mode": "tui"},
		"log":    map[string]any{"level": "error"},
	})
	t.Setenv(EnvPrefix+"CONFIG", path)
	t.Setenv(EnvPrefix+"LOG_LEVEL", "warn")
	t.Setenv(EnvPrefix+"AGENT_MAX_PASS_TRIES", "2")

	flags := parsedFlags(t, "--max-pass-tries=4")

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Agent.MaxPassTries, "flag beats env and JSON")
	assert.Equal(t, "warn", cfg.Log.Level, "env beats JSON")
	assert.Equal(t, 5*time.Minute, cfg.Agent.EvictInterval, "JSON beats defaults")
	assert.Equal(t, PromptModeTUI, cfg.Prompt.Mode)
	assert.Equal(t, DefaultVersion, cfg.App.Version, "defaults fill the rest")
}

// TestGetStructuredConfig_InvalidPromptMode verifies validation of the
// merged result.
func TestGetStructuredConfig_InvalidPromptMode(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvPrefix+"PROMPT_MODE", "gui")

	cfg, err := GetStructuredConfig(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidPromptConfigs)
}
