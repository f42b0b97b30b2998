package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token.
//
// Besides the registered claims (sub, iat, exp, jti) it carries the user's
// email as a custom "email" claim.
type Claims struct {
	// Email is the address of the user the token was minted for.
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// UserID returns the subject claim, which holds the user identifier.
func (c *Claims) UserID() string {
	return c.Subject
}
