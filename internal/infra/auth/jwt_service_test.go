package auth

import (
	"testing"
	"time"

	"showroom/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	cfg := &config.Config{
		Admin: &config.AdminConfig{
			JWTSecret: "test_admin_jwt_secret_very_long_for_testing",
			TokenTTL:  time.Hour,
		},
	}

	jwtService := NewJWTService(cfg)

	token, err := jwtService.GenerateAdminToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, jwtService.ValidateAdminToken(token))
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := &config.Config{
		Admin: &config.AdminConfig{
			JWTSecret: "test_admin_jwt_secret_very_long_for_testing",
			TokenTTL:  time.Hour,
		},
	}

	jwtService := NewJWTService(cfg)

	assert.Error(t, jwtService.ValidateAdminToken("clearly-not-a-jwt-token"))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := &config.Config{
		Admin: &config.AdminConfig{
			JWTSecret: "test_admin_jwt_secret_very_long_for_testing",
			TokenTTL:  -time.Minute,
		},
	}

	jwtService := NewJWTService(cfg)

	token, err := jwtService.GenerateAdminToken()
	require.NoError(t, err)

	assert.Error(t, jwtService.ValidateAdminToken(token))
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfgA := &config.Config{
		Admin: &config.AdminConfig{JWTSecret: "secret-a", TokenTTL: time.Hour},
	}
	cfgB := &config.Config{
		Admin: &config.AdminConfig{JWTSecret: "secret-b", TokenTTL: time.Hour},
	}

	serviceA := NewJWTService(cfgA)
	serviceB := NewJWTService(cfgB)

	token, err := serviceA.GenerateAdminToken()
	require.NoError(t, err)

	assert.Error(t, serviceB.ValidateAdminToken(token))
}

func TestJWTService_NotConfigured(t *testing.T) {
	jwtService := NewJWTService(&config.Config{})

	_, err := jwtService.GenerateAdminToken()
	assert.Error(t, err)
	assert.Error(t, jwtService.ValidateAdminToken("any-token"))
}
