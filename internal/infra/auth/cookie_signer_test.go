package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"showroom/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, secret string, ttl time.Duration) *cookieSigner {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Cookie = secret
	cfg.MagicLink.CookieTTL = ttl

	signer, err := NewCookieSigner(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return signer.(*cookieSigner)
}

func TestCookieSigner_SignAndVerify(t *testing.T) {
	signer := newTestSigner(t, "test-secret", time.Hour)

	credential, err := signer.Sign("user@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, credential)
	assert.Contains(t, credential, ".")

	email, ok := signer.Verify(credential)
	assert.True(t, ok)
	assert.Equal(t, "user@example.com", email)
}

func TestCookieSigner_Expired(t *testing.T) {
	signer := newTestSigner(t, "test-secret", -time.Minute)

	credential, err := signer.Sign("user@example.com")
	require.NoError(t, err)

	email, ok := signer.Verify(credential)
	assert.False(t, ok)
	assert.Empty(t, email)
}

func TestCookieSigner_TamperedPayload(t *testing.T) {
	signer := newTestSigner(t, "test-secret", time.Hour)

	credential, err := signer.Sign("user@example.com")
	require.NoError(t, err)

	payloadB64, sigB64, found := strings.Cut(credential, ".")
	require.True(t, found)

	forged := []byte(`{"email":"attacker@example.com","exp":9999999999}`)
	tampered := base64.RawURLEncoding.EncodeToString(forged) + "." + sigB64

	_, ok := signer.Verify(tampered)
	assert.False(t, ok)

	// Original payload with a signature from a different secret.
	payload, err := base64.RawURLEncoding.DecodeString(payloadB64)
	require.NoError(t, err)
	mac := hmac.New(sha256.New, []byte("other-secret"))
	mac.Write(payload)
	wrongSig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	_, ok = signer.Verify(payloadB64 + "." + wrongSig)
	assert.False(t, ok)
}

func TestCookieSigner_Malformed(t *testing.T) {
	signer := newTestSigner(t, "test-secret", time.Hour)

	for _, credential := range []string{
		"",
		"no-separator",
		"not!base64.also!not",
		base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig",
	} {
		email, ok := signer.Verify(credential)
		assert.False(t, ok, "credential %q should not verify", credential)
		assert.Empty(t, email)
	}
}

func TestCookieSigner_DifferentSecretsReject(t *testing.T) {
	signerA := newTestSigner(t, "secret-a", time.Hour)
	signerB := newTestSigner(t, "secret-b", time.Hour)

	credential, err := signerA.Sign("user@example.com")
	require.NoError(t, err)

	_, ok := signerB.Verify(credential)
	assert.False(t, ok)
}

func TestNewCookieSigner_ProductionRequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "production"

	signer, err := NewCookieSigner(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
	assert.Nil(t, signer)
}

func TestNewCookieSigner_DevFallback(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "local"
	cfg.MagicLink.CookieTTL = time.Hour

	signer, err := NewCookieSigner(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	credential, err := signer.Sign("user@example.com")
	require.NoError(t, err)

	email, ok := signer.Verify(credential)
	assert.True(t, ok)
	assert.Equal(t, "user@example.com", email)
}
