package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/finpulse/src/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.Cfg = &config.AppConfig{AccessTokenExpiry: time.Hour}
	a := NewAuthService("test-secret-key-that-is-long-enough-1234")

	token, err := a.GenerateToken("42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", sub)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	config.Cfg = &config.AppConfig{AccessTokenExpiry: time.Hour}
	a := NewAuthService("test-secret-key-that-is-long-enough-1234")

	token, err := a.GenerateToken("42")
	require.NoError(t, err)

	other := NewAuthService("a-completely-different-secret-key-5678")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	config.Cfg = &config.AppConfig{AccessTokenExpiry: -time.Minute}
	a := NewAuthService("test-secret-key-that-is-long-enough-1234")

	token, err := a.GenerateToken("42")
	require.NoError(t, err)

	_, err = a.ValidateToken(token)
	assert.Error(t, err)
}

func TestHashAndComparePassword(t *testing.T) {
	a := NewAuthService("irrelevant")

	hash, err := a.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, a.CompareHashAndPassword(hash, "correct horse battery staple"))
	assert.Error(t, a.CompareHashAndPassword(hash, "wrong password"))
}
