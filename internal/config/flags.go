package config

import (
	"github.com/spf13/pflag"
)

// FlagValues holds configuration values bound to command-line flags.
type FlagValues struct {
	cfg StructuredConfig
}

// BindFlags registers the configuration flags on fs and returns the values
// they will be parsed into. Unset flags stay zero and do not override other
// sources.
//
// Flags:
//
//	-c/--config       JSON config file path
//	--app-version     version written into new version lines
//	--max-pass-tries  password prompts before giving up
//	--evict-interval  eviction period of expired accounts (e.g. "30s")
//	--lock-hash-cost  bcrypt cost of the lock password hash
//	--db              SQLite database file
//	--config-dir      directory of encrypted agent files
//	--prompt          password prompt mode (terminal|tui)
//	--log-level       log level
//	--log-file        log file
func BindFlags(fs *pflag.FlagSet) *FlagValues {
	v := &FlagValues{}

	fs.StringVarP(&v.cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&v.cfg.App.Version, "app-version", "", "Version written into new version lines")
	fs.IntVar(&v.cfg.Agent.MaxPassTries, "max-pass-tries", 0, "Password prompts before giving up")
	fs.DurationVar(&v.cfg.Agent.EvictInterval, "evict-interval", 0, "Eviction period of expired accounts (e.g. 30s, 1m)")
	fs.IntVar(&v.cfg.Agent.LockHashCost, "lock-hash-cost", 0, "Bcrypt cost of the lock password hash")
	fs.StringVar(&v.cfg.Storage.DSN, "db", "", "SQLite database file")
	fs.StringVar(&v.cfg.Storage.ConfigDir, "config-dir", "", "Directory of encrypted agent files")
	fs.StringVar(&v.cfg.Prompt.Mode, "prompt", "", "Password prompt mode (terminal|tui)")
	fs.StringVar(&v.cfg.Log.Level, "log-level", "", "Log level (debug|info|warn|error)")
	fs.StringVar(&v.cfg.Log.File, "log-file", "", "Log file (stderr when empty)")

	return v
}

// Config returns a copy of the parsed flag values.
func (v *FlagValues) Config() *StructuredConfig {
	cfg := v.cfg
	return &cfg
}
