package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storekit/commerce-api/internal/core/domain"
)

const defaultTokenTTL = 4 * time.Hour

// TokenIssuer mints and verifies HS256-signed JWTs carrying the minimal
// identity claim set {email, id, role}.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the claims with an expiry ttl
// after issuance.
func (t *TokenIssuer) Issue(claims domain.TokenClaims) (string, error) {
	mc := jwt.MapClaims{
		"email": claims.Email,
		"id":    claims.UserID,
		"role":  claims.Role,
		"exp":   time.Now().Add(t.ttl).Unix(),
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return tkn.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the embedded claims
// unchanged. The signing algorithm is pinned to HS256.
func (t *TokenIssuer) Verify(token string) (*domain.TokenClaims, error) {
	mc := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, mc, func(tkn *jwt.Token) (interface{}, error) {
		if tkn.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	email, _ := mc["email"].(string)
	id, _ := mc["id"].(string)
	role, _ := mc["role"].(string)

	// A well-signed token still only grants roles the system knows.
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidToken
	}

	return &domain.TokenClaims{Email: email, UserID: id, Role: role}, nil
}
