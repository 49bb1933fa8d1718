package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for every failure mode: bad
// signature, structurally malformed token, wrong algorithm, or expiry
// in the past. Callers must not distinguish between them.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies the bearer tokens used by the API.
// Tokens are HS256-signed JWTs carrying {sub, exp} and nothing else;
// they are stateless, so there is no revocation and logout is a
// client-side no-op. A single signing key is active per process.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewTokenService(secret string, defaultTTL time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), defaultTTL: defaultTTL}
}

// Issue creates a token for the given subject (the user's email).
// A non-positive ttl falls back to the configured default.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the subject.
// Expiry is an exact compare; no clock-skew leeway is applied.
func (s *TokenService) Verify(raw string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
