package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(sub string) Claims {
	return Claims{
		Email: "student@csulb.edu",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(testNow.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
	}
}

func TestTokenVerifier_Valid(t *testing.T) {
	v := NewTokenVerifier(testSecret, func() time.Time { return testNow })
	id := uuid.New()

	user, expires, err := v.Verify(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(id.String())))

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	require.NotNil(t, user.Email)
	assert.Equal(t, "student@csulb.edu", *user.Email)
	assert.True(t, expires.Equal(testNow.Add(time.Hour)))
}

func TestTokenVerifier_NoEmail(t *testing.T) {
	v := NewTokenVerifier(testSecret, func() time.Time { return testNow })
	claims := validClaims(uuid.NewString())
	claims.Email = ""

	user, _, err := v.Verify(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims))

	require.NoError(t, err)
	assert.Nil(t, user.Email)
}

func TestTokenVerifier_Expired(t *testing.T) {
	v := NewTokenVerifier(testSecret, func() time.Time { return testNow.Add(2 * time.Hour) })

	_, _, err := v.Verify(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(uuid.NewString())))

	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenVerifier_Rejects(t *testing.T) {
	v := NewTokenVerifier(testSecret, func() time.Time { return testNow })

	noExp := validClaims(uuid.NewString())
	noExp.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims(uuid.NewString()))},
		{"wrong algorithm", signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(uuid.NewString()))},
		{"subject is not uuid", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("12345"))},
		{"no expiration", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExp)},
		{"garbage", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := v.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
