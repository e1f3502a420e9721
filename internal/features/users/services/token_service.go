package users_services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// Session lifetime without "stay logged in"
	shortSessionTTL = 30 * time.Minute
	// Session lifetime with "stay logged in"
	longSessionTTL = 30 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

type TokenClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless HS256 bearer tokens. Tokens
// are self-contained, there is no server-side revocation: a token stays
// valid until its expiry.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	if secret == "" {
		panic("JWT_SECRET must be configured")
	}

	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) IssueToken(userID uuid.UUID, stayLoggedIn bool) (string, error) {
	ttl := shortSessionTTL
	if stayLoggedIn {
		ttl = longSessionTTL
	}

	now := time.Now().UTC()
	claims := &TokenClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken returns the user ID encoded in a valid token. Bad signature,
// malformed token and expired token are indistinguishable to the caller.
func (s *TokenService) VerifyToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&TokenClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
