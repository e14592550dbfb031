// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-token-agent/models"
)

func validAccountConfig() models.AccountConfig {
	return models.AccountConfig{
		ShortName: "github",
		IssuerURL: "https://github.com/login/oauth",
	}
}

func TestNewAccountConfigValidator(t *testing.T) {
	require.NotNil(t, NewAccountConfigValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewAccountConfigValidator()
	ctx := context.Background()
	cfg := validAccountConfig()
	secrets := models.AccountSecrets{RefreshToken: models.SecretBytes("rt")}

	assert.NoError(t, v.Validate(ctx, cfg))
	assert.NoError(t, v.Validate(ctx, &cfg))
	assert.NoError(t, v.Validate(ctx, secrets))
	assert.NoError(t, v.Validate(ctx, &secrets))
	assert.ErrorIs(t, v.Validate(ctx, "github"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.Account{}), ErrUnsupportedType)
}

func TestValidate_ShortName(t *testing.T) {
	v := NewAccountConfigValidator()

	tests := []struct {
		name      string
		shortName string
		wantErr   bool
	}{
		{"simple", "github", false},
		{"with separators", "work.github_2-eu", false},
		{"empty", "", true},
		{"leading dot", ".hidden", true},
		{"space", "my account", true},
		{"path", "../etc", true},
		{"longest", strings.Repeat("a", 64), false},
		{"too long", strings.Repeat("a", 65), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAccountConfig()
			cfg.ShortName = tt.shortName

			err := v.Validate(context.Background(), cfg, FieldShortName)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidShortName)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_IssuerURL(t *testing.T) {
	v := NewAccountConfigValidator()

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https", "https://issuer.example.com", false},
		{"http with port", "http://localhost:8080/realms/dev", false},
		{"empty", "", true},
		{"no scheme", "issuer.example.com", true},
		{"ftp", "ftp://issuer.example.com", true},
		{"no host", "https://", true},
		{"bad escape", "https://issuer.example.com/%zz", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAccountConfig()
			cfg.IssuerURL = tt.url

			err := v.Validate(context.Background(), cfg, FieldIssuerURL)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIssuerURL)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_Secrets(t *testing.T) {
	v := NewAccountConfigValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.AccountSecrets{}), ErrEmptySecrets)
	assert.NoError(t, v.Validate(ctx, models.AccountSecrets{ClientSecret: models.SecretBytes("s")}))
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewAccountConfigValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, validAccountConfig(), "envelope"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.AccountSecrets{AccessToken: models.SecretBytes("a")}, FieldShortName), ErrUnknownField)
}
