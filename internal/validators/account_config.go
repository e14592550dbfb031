package validators

import (
	"context"
	"fmt"
	"net/url"
	"regexp"

	"github.com/MKhiriev/go-token-agent/models"
)

// Field names accepted by [AccountConfigValidator].
const (
	FieldShortName = "short_name"
	FieldIssuerURL = "issuer_url"
	FieldSecrets   = "secrets"
)

// shortNamePattern keeps short names usable as command arguments.
var shortNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// AccountConfigValidator validates account configurations and the secrets
// stored in them.
type AccountConfigValidator struct {
}

// NewAccountConfigValidator constructs an [AccountConfigValidator].
func NewAccountConfigValidator() Validator {
	return &AccountConfigValidator{}
}

// Validate accepts [models.AccountConfig] and [models.AccountSecrets], by
// value or pointer.
func (v *AccountConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccountConfig:
		return v.validateAccountConfig(ctx, value, fields...)
	case *models.AccountConfig:
		return v.validateAccountConfig(ctx, *value, fields...)

	case models.AccountSecrets:
		return v.validateSecrets(ctx, value, fields...)
	case *models.AccountSecrets:
		return v.validateSecrets(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountConfigValidator) validateAccountConfig(_ context.Context, cfg models.AccountConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldShortName, FieldIssuerURL}
	}

	for _, f := range fields {
		switch f {
		case FieldShortName:
			if !shortNamePattern.MatchString(cfg.ShortName) {
				return fmt.Errorf("%w: %q", ErrInvalidShortName, cfg.ShortName)
			}
		case FieldIssuerURL:
			if err := validateIssuerURL(cfg.IssuerURL); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountConfigValidator) validateSecrets(_ context.Context, secrets models.AccountSecrets, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSecrets}
	}

	for _, f := range fields {
		switch f {
		case FieldSecrets:
			if secrets.IsEmpty() {
				return ErrEmptySecrets
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateIssuerURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidIssuerURL, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("%w: scheme must be http or https", ErrInvalidIssuerURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is missing", ErrInvalidIssuerURL)
	}
	return nil
}
