package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagerWithSecret(t *testing.T, secret string) Manager {
	mgr, err := NewJwtManager(secret)
	require.NoError(t, err)
	return mgr
}

func signTokenWithSecret(secret string, method jwtlib.SigningMethod, claims jwtlib.Claims) (string, error) {
	token := jwtlib.NewWithClaims(method, claims)
	return token.SignedString([]byte(secret))
}

func TestCreateToken_AndValidate_Success(t *testing.T) {
	mgr := newManagerWithSecret(t, "test-secret")

	token, err := mgr.CreateToken("ops@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwtlib.RegisteredClaims{IssuedAt: jwtlib.NewNumericDate(time.Now())}}
	signed, err := signTokenWithSecret("other-secret", jwtlib.SigningMethodHS256, claims)
	require.NoError(t, err)

	_, err = newManagerWithSecret(t, "test-secret").ValidateToken(signed)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestValidateToken_WrongAlgorithm(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwtlib.RegisteredClaims{IssuedAt: jwtlib.NewNumericDate(time.Now())}}
	signed, err := signTokenWithSecret("test-secret", jwtlib.SigningMethodHS512, claims)
	require.NoError(t, err)

	_, err = newManagerWithSecret(t, "test-secret").ValidateToken(signed)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestValidateToken_Expired(t *testing.T) {
	secret := "expire-secret"
	claims := &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
		IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-1 * time.Hour)),
	}}
	signed, err := signTokenWithSecret(secret, jwtlib.SigningMethodHS256, claims)
	require.NoError(t, err)

	_, err = newManagerWithSecret(t, secret).ValidateToken(signed)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newManagerWithSecret(t, "s").ValidateToken("not.a.token")
	assert.Equal(t, ErrInvalidToken, err)
}

func TestNewJwtManager_EmptySecret(t *testing.T) {
	_, err := NewJwtManager("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
