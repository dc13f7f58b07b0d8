package jwtinfra

import (
	"testing"
	"time"

	"github.com/CodedSedorf/mern-auth/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := NewProvider(&config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 7 * 24 * time.Hour,
	})
	require.NoError(t, err)
	return p
}

func TestNewProvider_MissingSecret(t *testing.T) {
	_, err := NewProvider(&config.Config{})
	assert.Error(t, err)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	p := newTestProvider(t)

	token, err := p.Sign("01HUSER")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := p.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "01HUSER", claims.UserID)
}

func TestVerify_ExpiredToken(t *testing.T) {
	expired := &Provider{secret: []byte("test-secret"), expiry: -time.Minute}
	token, err := expired.Sign("01HUSER")
	require.NoError(t, err)

	p := newTestProvider(t)
	_, err = p.Verify(token)
	assert.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	p := newTestProvider(t)
	token, err := p.Sign("01HUSER")
	require.NoError(t, err)

	other, err := NewProvider(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})
	require.NoError(t, err)
	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	p := newTestProvider(t)
	_, err := p.Verify("not-a-real-token")
	assert.Error(t, err)
}
