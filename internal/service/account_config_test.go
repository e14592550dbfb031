package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-token-agent/internal/envelope"
	"github.com/MKhiriev/go-token-agent/internal/logger"
	"github.com/MKhiriev/go-token-agent/internal/mock"
	"github.com/MKhiriev/go-token-agent/internal/secret"
	"github.com/MKhiriev/go-token-agent/internal/store"
	"github.com/MKhiriev/go-token-agent/internal/validators"
	"github.com/MKhiriev/go-token-agent/models"
)

func newTestAccountConfigService(t *testing.T) (*accountConfigService, *mock.MockAccountConfigRepository, retryDeps) {
	t.Helper()
	codec := newTestCodec()
	crypt, deps := newTestCryptService(t, codec, 2)
	repo := mock.NewMockAccountConfigRepository(gomock.NewController(t))

	svc := NewAccountConfigService(repo, validators.NewAccountConfigValidator(), codec, crypt, logger.Nop()).(*accountConfigService)
	return svc, repo, deps
}

var testSecrets = models.AccountSecrets{
	RefreshToken: models.SecretBytes("rt"),
	ClientID:     models.SecretBytes("cid"),
	ClientSecret: models.SecretBytes("cs"),
}

func TestAccountConfigService_SaveThenLoad(t *testing.T) {
	svc, repo, _ := newTestAccountConfigService(t)
	ctx := context.Background()
	now := time.Date(2026, 2, 2, 2, 2, 2, 0, time.UTC)
	svc.now = func() time.Time { return now }

	var saved models.AccountConfig
	repo.EXPECT().Get(gomock.Any(), "work").Return(models.AccountConfig{}, store.ErrAccountConfigNotFound)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cfg models.AccountConfig) error {
		saved = cfg
		return nil
	})

	require.NoError(t, svc.Save(ctx, "work", "https://issuer.example.com", testSecrets, secret.FromString("pw")))
	assert.Equal(t, now, saved.CreatedAt)
	assert.Contains(t, saved.Envelope, "\nversion: "+testVersion)
	assert.NotContains(t, saved.Envelope, "cid")

	repo.EXPECT().Get(gomock.Any(), "work").Return(saved, nil)
	acc, err := svc.Load(ctx, "work", secret.FromString("pw"))
	require.NoError(t, err)
	assert.Equal(t, models.Identity{ShortName: "work", IssuerURL: "https://issuer.example.com"}, acc.Identity())
	assert.Equal(t, []byte("rt"), acc.RefreshToken.Value())
	assert.Equal(t, []byte("cid"), acc.ClientID.Value())
	assert.Equal(t, []byte("cs"), acc.ClientSecret.Value())
	assert.Empty(t, acc.AccessToken.Value())
}

func TestAccountConfigService_SaveKeepsCreatedAt(t *testing.T) {
	svc, repo, _ := newTestAccountConfigService(t)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().Get(gomock.Any(), "work").Return(models.AccountConfig{ShortName: "work", CreatedAt: created}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cfg models.AccountConfig) error {
		assert.Equal(t, created, cfg.CreatedAt)
		assert.True(t, cfg.UpdatedAt.After(created))
		return nil
	})

	require.NoError(t, svc.Save(context.Background(), "work", "https://i", testSecrets, secret.FromString("pw")))
}

func TestAccountConfigService_SaveValidation(t *testing.T) {
	svc, _, _ := newTestAccountConfigService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Save(ctx, "", "https://i", testSecrets, secret.FromString("pw")), envelope.ErrArgumentMissing)
	assert.ErrorIs(t, svc.Save(ctx, "work", "https://i", testSecrets, nil), envelope.ErrArgumentMissing)
	assert.ErrorIs(t, svc.Save(ctx, "my work", "https://i", testSecrets, secret.FromString("pw")), validators.ErrInvalidShortName)
	assert.ErrorIs(t, svc.Save(ctx, "work", "issuer", testSecrets, secret.FromString("pw")), validators.ErrInvalidIssuerURL)
	assert.ErrorIs(t, svc.Save(ctx, "work", "https://i", models.AccountSecrets{}, secret.FromString("pw")), validators.ErrEmptySecrets)
}

func TestAccountConfigService_LoadPromptsWithoutPassword(t *testing.T) {
	svc, repo, deps := newTestAccountConfigService(t)
	ctx := context.Background()

	text, err := svc.codec.EncodeWithVersion([]byte(`{"refresh_token":"rt","client_id":"c","client_secret":"s"}`), []byte("pw"))
	require.NoError(t, err)
	repo.EXPECT().Get(gomock.Any(), "work").Return(models.AccountConfig{ShortName: "work", IssuerURL: "https://i", Envelope: text}, nil)
	deps.prompter.EXPECT().PromptPassword(gomock.Any(), PasswordPrompt).DoAndReturn(passwords("pw"))

	acc, err := svc.Load(ctx, "work", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("rt"), acc.RefreshToken.Value())
}

func TestAccountConfigService_LoadErrors(t *testing.T) {
	svc, repo, _ := newTestAccountConfigService(t)
	ctx := context.Background()

	repo.EXPECT().Get(gomock.Any(), "missing").Return(models.AccountConfig{}, store.ErrAccountConfigNotFound)
	_, err := svc.Load(ctx, "missing", secret.FromString("pw"))
	assert.ErrorIs(t, err, store.ErrAccountConfigNotFound)

	text, err := svc.codec.EncodeWithVersion([]byte("not json"), []byte("pw"))
	require.NoError(t, err)
	repo.EXPECT().Get(gomock.Any(), "broken").Return(models.AccountConfig{ShortName: "broken", Envelope: text}, nil)
	_, err = svc.Load(ctx, "broken", secret.FromString("pw"))
	assert.ErrorIs(t, err, envelope.ErrMalformedEnvelope)
}

// fixedPlaintext is a CryptService whose decryption always yields plain.
type fixedPlaintext struct {
	CryptService
	plain []byte
}

func (c fixedPlaintext) DecryptWithRetry(context.Context, []string, *secret.Buffer) (*secret.Buffer, error) {
	return secret.New(c.plain), nil
}

func TestAccountConfigService_LoadWipesDecodedSecrets(t *testing.T) {
	svc, repo, _ := newTestAccountConfigService(t)
	plain := []byte(`{"access_token":"at\n1","refresh_token":"rt","client_id":"cid","client_secret":"cs"}`)
	svc.crypt = fixedPlaintext{plain: plain}

	repo.EXPECT().Get(gomock.Any(), "work").Return(models.AccountConfig{ShortName: "work", IssuerURL: "https://i"}, nil)
	acc, err := svc.Load(context.Background(), "work", secret.FromString("pw"))
	require.NoError(t, err)

	assert.Equal(t, make([]byte, len(plain)), plain, "decrypted json must be wiped")
	assert.Equal(t, []byte("at\n1"), acc.AccessToken.Value())

	fields := [][]byte{acc.AccessToken.Value(), acc.RefreshToken.Value(), acc.ClientID.Value(), acc.ClientSecret.Value()}
	acc.Destroy()
	for _, v := range fields {
		assert.Equal(t, make([]byte, len(v)), v, "the account owns the only copy of every secret")
	}
}

func TestAccountConfigService_ListAndDelete(t *testing.T) {
	svc, repo, _ := newTestAccountConfigService(t)
	ctx := context.Background()

	repo.EXPECT().List(gomock.Any()).Return([]models.AccountConfig{{ShortName: "a"}}, nil)
	repo.EXPECT().Delete(gomock.Any(), "a").Return(nil)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, svc.Delete(ctx, "a"))
}
