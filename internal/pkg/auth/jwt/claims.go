package jwt

import "github.com/golang-jwt/jwt"

// Payload is the claim set carried by RoomChat access tokens.
// The authenticated username travels in the standard "sub" claim; expiry,
// issue time and issuer use their standard fields as well, so the token is
// fully self-contained.
type Payload struct {
	jwt.StandardClaims
}

// Username returns the token subject.
func (p *Payload) Username() string {
	return p.Subject
}
