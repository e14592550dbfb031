package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-token-agent/internal/config"
	"github.com/MKhiriev/go-token-agent/internal/logger"
	"github.com/MKhiriev/go-token-agent/internal/service"
	"github.com/MKhiriev/go-token-agent/internal/store"
	"github.com/MKhiriev/go-token-agent/internal/version"
	"github.com/MKhiriev/go-token-agent/models"
)

// app holds what the subcommands share. Services are created on first use so
// that commands like version never touch the database.
type app struct {
	build models.AppBuildInfo
	flags *config.FlagValues

	cfg      *config.StructuredConfig
	log      *logger.Logger
	storages *store.Storages
	services *service.Services
}

func newRootCmd(build models.AppBuildInfo) (*cobra.Command, *app) {
	a := &app{build: build}

	root := &cobra.Command{
		Use:   "token-agent",
		Short: "Keep OAuth credentials encrypted on disk and in memory",
		Long: `token-agent stores OAuth-style credentials (access token, refresh token,
client id and client secret) in password-encrypted envelopes and serves them
from an agent that keeps them obfuscated in memory and can be locked.

Examples:
  # Encrypt a file and read it back
  token-agent encrypt secrets.enc < secrets.json
  token-agent decrypt secrets.enc

  # Store an account and run the agent
  token-agent account save github https://github.com --secrets-file github.json
  token-agent agent`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newVersionCmd(a),
		newEncryptCmd(a),
		newDecryptCmd(a),
		newReencryptCmd(a),
		newAccountCmd(a),
		newIPCCmd(a),
		newAgentCmd(a),
	)
	return root, a
}

// setup loads the configuration and wires storages and services.
func (a *app) setup(cmd *cobra.Command) (*service.Services, error) {
	if a.services != nil {
		return a.services, nil
	}

	if v := a.build.BuildVersion(); version.IsCurrentFormat(version.Parse(v)) {
		config.DefaultVersion = v
	}

	cfg, err := config.GetStructuredConfig(a.flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewLogger("token-agent")
	if cfg.Log.File != "" {
		log = logger.NewFileLogger("token-agent", cfg.Log.File)
	}
	// constructing a logger resets the global level
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	log.Debug().Any("config", cfg).Msg("received configs")
	cmd.SetContext(log.WithContext(cmd.Context()))

	storages, err := store.NewStorages(cmd.Context(), cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	a.cfg = cfg
	a.log = log
	a.storages = storages
	a.services = service.NewServices(storages, *cfg, log)
	return a.services, nil
}

func (a *app) close() {
	if a.services != nil {
		a.services.Agent.Close()
	}
	if a.storages != nil {
		if err := a.storages.Close(); err != nil {
			a.log.Err(err).Msg("error closing storages")
		}
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), a.build)
		},
	}
}
