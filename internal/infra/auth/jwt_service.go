package auth

import (
	"time"

	"showroom/config"
	"showroom/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService. The dashboard is an
// optional surface; without a configured secret the service stays disabled
// and every token operation fails.
func NewJWTService(cfg *config.Config) service.TokenService {
	svc := &jwtService{}
	if cfg.Admin != nil && cfg.Admin.JWTSecret != "" {
		svc.secret = []byte(cfg.Admin.JWTSecret)
		svc.ttl = cfg.Admin.TokenTTL
	}

	return svc
}

// GenerateAdminToken creates a signed access token for the admin dashboard.
func (s *jwtService) GenerateAdminToken() (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("admin dashboard is not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "admin",
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign admin token")
	}

	return token, nil
}

// ValidateAdminToken checks a token string, returning an error when it is
// invalid or expired.
func (s *jwtService) ValidateAdminToken(tokenString string) error {
	if len(s.secret) == 0 {
		return errors.New("admin dashboard is not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return errors.Wrap(err, "parse admin token")
	}
	if !token.Valid {
		return errors.New("invalid admin token")
	}

	return nil
}
