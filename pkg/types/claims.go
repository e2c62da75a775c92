package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload. The registered Subject carries the
// user's email; every protected request re-resolves it to a user row.
type Claims struct {
	jwt.RegisteredClaims
}

func (c *Claims) Email() string {
	return c.Subject
}
