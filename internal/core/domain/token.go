package domain

import "errors"

var ErrInvalidToken = errors.New("invalid token")
var ErrExpiredToken = errors.New("token expired")

// TokenClaims is the identity snapshot embedded in a bearer token at
// issuance. The role is NOT re-checked against the store on later requests;
// a role change takes effect only after the holder logs in again.
type TokenClaims struct {
	Email  string
	UserID string
	Role   string
}
