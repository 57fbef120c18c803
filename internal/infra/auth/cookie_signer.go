// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"showroom/config"
	"showroom/internal/domain/service"

	"github.com/pkg/errors"
)

// devCookieSecret is the published fallback used outside production so the
// service boots without configuration. Credentials signed with it offer no
// security.
const devCookieSecret = "dev-cookie-secret-do-not-use-in-production"

// credentialPayload is the JSON body embedded in a signed credential.
type credentialPayload struct {
	Email string `json:"email"`
	Exp   int64  `json:"exp"`
}

// cookieSigner implements service.CredentialSigner with an HMAC-SHA256
// signature over a base64url-encoded JSON payload. The wire format is
// "payloadB64.sigB64" (raw URL encoding, no padding), where the signature is
// computed over the decoded payload bytes.
type cookieSigner struct {
	secret []byte
	ttl    time.Duration
	logger *slog.Logger
}

// NewCookieSigner is the constructor for cookieSigner. In production a
// configured secret is mandatory; elsewhere a development fallback is used.
func NewCookieSigner(cfg *config.Config, logger *slog.Logger) (service.CredentialSigner, error) {
	secret := cfg.SecretKey.Cookie
	if secret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("secretKey.cookie must be set in production")
		}

		logger.Warn("cookie secret not set, using development fallback")
		secret = devCookieSecret
	}

	return &cookieSigner{
		secret: []byte(secret),
		ttl:    cfg.MagicLink.CookieTTL,
		logger: logger,
	}, nil
}

// Sign produces a credential asserting the email is verified for the
// configured lifetime.
func (s *cookieSigner) Sign(email string) (string, error) {
	payload, err := json.Marshal(credentialPayload{
		Email: email,
		Exp:   time.Now().Add(s.ttl).Unix(),
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal credential payload")
	}

	return base64.RawURLEncoding.EncodeToString(payload) + "." + s.signature(payload), nil
}

// Verify decodes and checks a credential. Every failure mode yields
// ("", false); callers treat them all as "not authenticated".
func (s *cookieSigner) Verify(credential string) (string, bool) {
	payloadB64, sigB64, found := strings.Cut(credential, ".")
	if !found {
		return "", false
	}

	payload, err := base64.RawURLEncoding.DecodeString(payloadB64)
	if err != nil {
		return "", false
	}

	if !hmac.Equal([]byte(sigB64), []byte(s.signature(payload))) {
		return "", false
	}

	var decoded credentialPayload
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", false
	}
	if decoded.Email == "" || decoded.Exp <= time.Now().Unix() {
		return "", false
	}

	return decoded.Email, true
}

// signature computes the base64url-encoded HMAC-SHA256 of the payload bytes.
func (s *cookieSigner) signature(payload []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(payload)

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
