package service

import (
	"github.com/MKhiriev/go-token-agent/internal/config"
	"github.com/MKhiriev/go-token-agent/internal/crypto"
	"github.com/MKhiriev/go-token-agent/internal/envelope"
	"github.com/MKhiriev/go-token-agent/internal/ipc"
	"github.com/MKhiriev/go-token-agent/internal/logger"
	"github.com/MKhiriev/go-token-agent/internal/prompt"
	"github.com/MKhiriev/go-token-agent/internal/store"
	"github.com/MKhiriev/go-token-agent/internal/validators"
)

// Services groups the agent services wired to their collaborators.
type Services struct {
	Codec          envelope.EnvelopeCodec
	Crypt          CryptService
	AccountConfigs AccountConfigService
	Agent          *Agent
	IPC            *ipc.Codec
	Prompter       prompt.Prompter
}

// NewServices wires every service from storages and cfg. The process-local
// memory key is generated here, once.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	codec := envelope.NewCodec(crypto.NewPasswordCipher(), cfg.App.Version)
	prompter := newPrompter(cfg.Prompt)
	crypt := NewCryptService(codec, prompter, prompt.NewColorReporter(), storages.Files, cfg.Agent.MaxPassTries, logger)

	accounts := store.NewAccounts(NewMemoryLayer(crypto.NewMemoryCipher()), logger)
	agent := NewAgent(accounts, NewLockLayer(codec, logger), logger, WithLockHashCost(cfg.Agent.LockHashCost))

	return &Services{
		Codec:          codec,
		Crypt:          crypt,
		AccountConfigs: NewAccountConfigService(storages.AccountConfigs, validators.NewAccountConfigValidator(), codec, crypt, logger),
		Agent:          agent,
		IPC:            ipc.NewCodec(crypto.NewKeyCipher()),
		Prompter:       prompter,
	}
}

func newPrompter(cfg config.Prompt) prompt.Prompter {
	if cfg.Mode == config.PromptModeTUI {
		return prompt.NewTUI()
	}
	return prompt.NewTerminal()
}
