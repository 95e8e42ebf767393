package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-16-chars"

func TestNewTokenServiceRejectsShortSecret(t *testing.T) {
	_, err := NewTokenService("short", time.Hour)
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	userID := uuid.New().String()
	token, err := svc.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	_, err = svc.Validate("this.is.garbage")
	assert.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signer, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenService("another-secret-16-chars-long", time.Hour)
	require.NoError(t, err)

	token, err := signer.Generate(uuid.New().String())
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	now := time.Now().Add(-2 * time.Hour)
	claims := jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Validate(expired)
	assert.Error(t, err)
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	svc, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(unsigned)
	assert.Error(t, err)
}
