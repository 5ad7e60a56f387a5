/*
Package jwt implements the token service: issuing and verifying the signed,
time-limited bearer tokens that authenticate every protected request.

Tokens are stateless; there is no server-side revocation list, expiry is the
only invalidation mechanism.
*/
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenIssuer identifies tokens minted by this service.
const TokenIssuer = "RoomChat-Server"

// GenerateToken signs a new HS256 token for subject with an absolute expiry
// of now+ttl.
func GenerateToken(subject, secretKey string, ttl time.Duration) (string, error) {
	now := time.Now()

	payload := &Payload{
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			ExpiresAt: now.Add(ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    TokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	return token.SignedString([]byte(secretKey))
}

// ParseToken validates the signature and expiry of tokenString and returns
// its claims. Malformed, tampered and expired tokens all fail; callers must
// not distinguish between these cases in responses.
func ParseToken(tokenString, secretKey string) (*Payload, error) {
	claims := &Payload{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}
