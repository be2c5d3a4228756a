package ports

import "github.com/storekit/commerce-api/internal/core/domain"

// TokenIssuer mints and verifies signed bearer tokens.
type TokenIssuer interface {
	// Issue produces a signed token embedding the claims with a fixed expiry.
	Issue(claims domain.TokenClaims) (string, error)
	// Verify checks signature and expiry and returns the embedded claims
	// unchanged. Fails with domain.ErrInvalidToken or domain.ErrExpiredToken.
	Verify(token string) (*domain.TokenClaims, error)
}
