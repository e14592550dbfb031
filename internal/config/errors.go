package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an application version that is not a
	// semantic version.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAgentConfigs indicates invalid agent settings (for example,
	// zero password tries or eviction interval).
	ErrInvalidAgentConfigs = errors.New("invalid agent configuration")
	// ErrInvalidPromptConfigs indicates an unknown prompt mode.
	ErrInvalidPromptConfigs = errors.New("invalid prompt configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
