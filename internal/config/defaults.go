package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultVersion is written into version lines when no version is configured.
// Release binaries replace it with their build version.
var DefaultVersion = "2.1.0"

// Defaults returns the built-in configuration.
func Defaults() *StructuredConfig {
	dir := defaultConfigDir()

	return &StructuredConfig{
		App: App{
			Version: DefaultVersion,
		},
		Agent: Agent{
			MaxPassTries:  3,
			EvictInterval: time.Minute,
			LockHashCost:  10,
		},
		Storage: Storage{
			DSN:       filepath.Join(dir, "accounts.db"),
			ConfigDir: dir,
		},
		Prompt: Prompt{
			Mode: PromptModeTerminal,
		},
		Log: Log{
			Level: "info",
		},
	}
}

func defaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".token-agent"
	}
	return filepath.Join(base, "token-agent")
}
