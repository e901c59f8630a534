package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/beautyparlor/booking-api/internal/core/domain"
	"github.com/beautyparlor/booking-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// TokenService signs and verifies HS256 bearer tokens with a fixed TTL.
// There is no refresh mechanism; expired callers must re-issue.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs the claims with the server secret and a 1-hour expiry.
func (s *TokenService) Issue(claims ports.Claims) (string, error) {
	mc := jwt.MapClaims{
		"email": claims.Email,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}
	if claims.Name != "" {
		mc["name"] = claims.Name
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims. Expiry and
// signature failures are distinguished so the caller can surface the cause.
func (s *TokenService) Verify(token string) (ports.Claims, error) {
	mc := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.Claims{}, domain.ErrTokenExpired
		}
		return ports.Claims{}, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return ports.Claims{}, domain.ErrTokenInvalid
	}

	claims := ports.Claims{}
	claims.Email, _ = mc["email"].(string)
	claims.Name, _ = mc["name"].(string)
	if claims.Email == "" {
		return ports.Claims{}, domain.ErrTokenInvalid
	}
	return claims, nil
}
