package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-thats-at-least-32-chars!"

func mintToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := &UserClaims{
		UserID: 10,
		Email:  "alice@corp.com",
		Roles:  []string{"recruiter"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestTokenManager_ValidateToken(t *testing.T) {
	tm := NewTokenManager(testSecret)

	t.Run("Valid", func(t *testing.T) {
		signed := mintToken(t, testSecret, time.Now().Add(time.Hour))

		claims, err := tm.ValidateToken(signed)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), claims.UserID)
		assert.Equal(t, "alice@corp.com", claims.Email)
		assert.Equal(t, []string{"recruiter"}, claims.Roles)
	})

	t.Run("Expired", func(t *testing.T) {
		signed := mintToken(t, testSecret, time.Now().Add(-time.Hour))

		_, err := tm.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		signed := mintToken(t, "some-other-secret-thats-32-chars!!!!", time.Now().Add(time.Hour))

		_, err := tm.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := tm.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
