package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(Config{
		Secret:         "test-secret",
		Issuer:         "roster-api",
		Audience:       "roster",
		ExpirationMins: 60,
	})
	require.NoError(t, err)
	return svc
}

func TestService_SignAndVerify(t *testing.T) {
	svc := newTestService(t)

	signed, err := svc.Sign("auth0|abc123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	subject, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "auth0|abc123", subject)
}

func TestService_VerifyRejectsWrongSecret(t *testing.T) {
	svc := newTestService(t)

	signed, err := svc.Sign("auth0|abc123")
	require.NoError(t, err)

	other, err := NewService(Config{
		Secret:         "different-secret",
		Issuer:         "roster-api",
		Audience:       "roster",
		ExpirationMins: 60,
	})
	require.NoError(t, err)

	_, err = other.Verify(signed)
	assert.Error(t, err)
}

func TestService_VerifyRejectsWrongIssuer(t *testing.T) {
	svc := newTestService(t)

	signed, err := svc.Sign("auth0|abc123")
	require.NoError(t, err)

	other, err := NewService(Config{
		Secret:         "test-secret",
		Issuer:         "someone-else",
		Audience:       "roster",
		ExpirationMins: 60,
	})
	require.NoError(t, err)

	_, err = other.Verify(signed)
	assert.Error(t, err)
}

func TestService_ExpiredToken(t *testing.T) {
	svc, err := NewService(Config{
		Secret:         "test-secret",
		Issuer:         "roster-api",
		Audience:       "roster",
		ExpirationMins: -1,
	})
	require.NoError(t, err)

	signed, err := svc.Sign("auth0|abc123")
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.Error(t, err)
}

func TestNewService_RequiresSecret(t *testing.T) {
	_, err := NewService(Config{Issuer: "roster-api", Audience: "roster"})
	assert.ErrorIs(t, err, ErrNoSecret)
}
