package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/devpath/tutorial-platform/internal/core/domain"
)

// TokenService issues and verifies HS256-signed session tokens. The payload
// carries only the user id — it is the single trust anchor for identity
// resolution, so nothing sensitive goes in.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService. A ttl of zero disables expiry.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
	}
	if s.ttl > 0 {
		claims["exp"] = now.Add(s.ttl).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the signature (and expiry, when present) and returns the
// encoded user id. Any failure — malformed token, wrong signature, wrong
// algorithm, expired — collapses into ErrNotAuthenticated; partial data is
// never returned.
func (s *TokenService) Verify(token string) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return uuid.Nil, domain.ErrNotAuthenticated
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, domain.ErrNotAuthenticated
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, domain.ErrNotAuthenticated
	}
	return id, nil
}
