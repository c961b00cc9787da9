package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to an operator.
//
// It embeds [jwt.RegisteredClaims] for standard claim access (subject,
// expiry, issuer). SignedString holds the compact serialized form that
// travels in the login response and the Authorization header.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Username returns the operator name stored in the "sub" claim.
func (t *Token) Username() string {
	return t.Subject
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
