package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-token-agent/internal/envelope"
	"github.com/MKhiriev/go-token-agent/internal/logger"
	"github.com/MKhiriev/go-token-agent/internal/secret"
	"github.com/MKhiriev/go-token-agent/internal/store"
	"github.com/MKhiriev/go-token-agent/internal/validators"
	"github.com/MKhiriev/go-token-agent/models"
)

type accountConfigService struct {
	repo      store.AccountConfigRepository
	validator validators.Validator
	codec     envelope.EnvelopeCodec
	crypt     CryptService
	now       func() time.Time
	logger    *logger.Logger
}

// NewAccountConfigService constructs an [AccountConfigService].
func NewAccountConfigService(
	repo store.AccountConfigRepository,
	validator validators.Validator,
	codec envelope.EnvelopeCodec,
	crypt CryptService,
	logger *logger.Logger,
) AccountConfigService {
	return &accountConfigService{
		repo:      repo,
		validator: validator,
		codec:     codec,
		crypt:     crypt,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *accountConfigService) Save(ctx context.Context, shortName, issuerURL string, secrets models.AccountSecrets, password *secret.Buffer) error {
	if shortName == "" || issuerURL == "" {
		return fmt.Errorf("%w: short name and issuer url are required", envelope.ErrArgumentMissing)
	}
	if !password.IsSet() {
		return fmt.Errorf("%w: password", envelope.ErrArgumentMissing)
	}
	if err := s.validator.Validate(ctx, models.AccountConfig{ShortName: shortName, IssuerURL: issuerURL}); err != nil {
		return err
	}
	if err := s.validator.Validate(ctx, secrets); err != nil {
		return err
	}

	plain, err := secrets.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode account secrets: %w", err)
	}
	defer memguard.WipeBytes(plain)

	text, err := s.codec.EncodeWithVersion(plain, password.Bytes())
	if err != nil {
		return err
	}

	now := s.now().UTC()
	createdAt := now
	existing, err := s.repo.Get(ctx, shortName)
	switch {
	case err == nil:
		createdAt = existing.CreatedAt
	case !errors.Is(err, store.ErrAccountConfigNotFound):
		return err
	}

	err = s.repo.Save(ctx, models.AccountConfig{
		ShortName: shortName,
		IssuerURL: issuerURL,
		Envelope:  text,
		CreatedAt: createdAt,
		UpdatedAt: now,
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "accountConfigService.Save").
		Str("account", shortName).
		Msg("account config saved")
	return nil
}

func (s *accountConfigService) Load(ctx context.Context, shortName string, password *secret.Buffer) (*models.Account, error) {
	cfg, err := s.repo.Get(ctx, shortName)
	if err != nil {
		return nil, err
	}

	plain, err := s.crypt.DecryptWithRetry(ctx, strings.Split(cfg.Envelope, "\n"), password)
	if err != nil {
		return nil, err
	}
	defer plain.Destroy()

	var secrets models.AccountSecrets
	if err = json.Unmarshal(plain.Bytes(), &secrets); err != nil {
		secrets.Wipe()
		return nil, fmt.Errorf("%w: account config %q: %v", envelope.ErrMalformedEnvelope, shortName, err)
	}

	// the fields take ownership of the decoded buffers
	acc := models.NewAccount(cfg.ShortName, cfg.IssuerURL)
	acc.AccessToken = models.NewField([]byte(secrets.AccessToken))
	acc.RefreshToken = models.NewField([]byte(secrets.RefreshToken))
	acc.ClientID = models.NewField([]byte(secrets.ClientID))
	acc.ClientSecret = models.NewField([]byte(secrets.ClientSecret))

	return acc, nil
}

func (s *accountConfigService) List(ctx context.Context) ([]models.AccountConfig, error) {
	return s.repo.List(ctx)
}

func (s *accountConfigService) Delete(ctx context.Context, shortName string) error {
	return s.repo.Delete(ctx, shortName)
}
