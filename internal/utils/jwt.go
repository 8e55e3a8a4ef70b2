package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWT Claims. Subject carries the username; expiry and issue time are the
// standard registered claims.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateJWT creates a signed HS256 token for the given username with the
// given lifetime.
func GenerateJWT(username, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT parses and validates a token string. It fails closed: any
// malformed, expired, or wrongly signed token yields an error.
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.Subject != "" {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
