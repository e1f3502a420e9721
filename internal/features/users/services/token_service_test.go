package users_services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "token-service-test-secret"

func signTestToken(t *testing.T, secret string, userID uuid.UUID, issuedAt time.Time, ttl time.Duration) string {
	t.Helper()

	claims := &TokenClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func parseClaims(t *testing.T, token string) *TokenClaims {
	t.Helper()

	parsed, err := jwt.ParseWithClaims(
		token,
		&TokenClaims{},
		func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		},
	)
	require.NoError(t, err)

	claims, ok := parsed.Claims.(*TokenClaims)
	require.True(t, ok)

	return claims
}

func Test_IssueToken_WithoutStayLoggedIn_ExpiresInThirtyMinutes(t *testing.T) {
	service := NewTokenService(testSecret)

	token, err := service.IssueToken(uuid.New(), false)
	assert.NoError(t, err)

	claims := parseClaims(t, token)
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 30*time.Minute, lifetime)
}

func Test_IssueToken_WithStayLoggedIn_ExpiresInThirtyDays(t *testing.T) {
	service := NewTokenService(testSecret)

	token, err := service.IssueToken(uuid.New(), true)
	assert.NoError(t, err)

	claims := parseClaims(t, token)
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 30*24*time.Hour, lifetime)
}

func Test_VerifyToken_WithFreshToken_ReturnsUserID(t *testing.T) {
	service := NewTokenService(testSecret)
	userID := uuid.New()

	token, err := service.IssueToken(userID, false)
	assert.NoError(t, err)

	parsedID, err := service.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func Test_VerifyToken_WithExpiredShortToken_ReturnsError(t *testing.T) {
	service := NewTokenService(testSecret)

	// issued 31 minutes ago with the 30-minute lifetime
	token := signTestToken(
		t,
		testSecret,
		uuid.New(),
		time.Now().UTC().Add(-31*time.Minute),
		30*time.Minute,
	)

	_, err := service.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_VerifyToken_LongToken_ValidAtTwentyNineDays_ExpiredAtThirtyOne(t *testing.T) {
	service := NewTokenService(testSecret)
	ttl := 30 * 24 * time.Hour

	stillValid := signTestToken(
		t,
		testSecret,
		uuid.New(),
		time.Now().UTC().Add(-29*24*time.Hour),
		ttl,
	)
	_, err := service.VerifyToken(stillValid)
	assert.NoError(t, err)

	expired := signTestToken(
		t,
		testSecret,
		uuid.New(),
		time.Now().UTC().Add(-31*24*time.Hour),
		ttl,
	)
	_, err = service.VerifyToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_VerifyToken_WithWrongSecret_ReturnsError(t *testing.T) {
	service := NewTokenService(testSecret)

	forged := signTestToken(
		t,
		"some-other-secret",
		uuid.New(),
		time.Now().UTC(),
		30*time.Minute,
	)

	_, err := service.VerifyToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_VerifyToken_WithGarbage_ReturnsError(t *testing.T) {
	service := NewTokenService(testSecret)

	_, err := service.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_VerifyToken_WithUnsignedAlgorithm_ReturnsError(t *testing.T) {
	service := NewTokenService(testSecret)

	claims := &TokenClaims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = service.VerifyToken(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
