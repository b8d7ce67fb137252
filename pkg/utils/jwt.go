package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The upstream API issues and signs the bearer token; the gateway never
// verifies the signature, it only reads the expiry claim so a dead token can
// evict its session instead of producing 401s on every proxied call.

// TokenExpiry returns the exp claim of an upstream bearer token. Tokens
// without an exp claim return a zero time.
func TokenExpiry(tokenString string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, err
	}
	return exp.Time, nil
}

// TokenExpired reports whether the token carries an expiry in the past.
// Malformed tokens count as expired; tokens without an exp claim do not.
func TokenExpired(tokenString string) bool {
	expiry, err := TokenExpiry(tokenString)
	if err != nil {
		return true
	}
	if expiry.IsZero() {
		return false
	}
	return expiry.Before(time.Now())
}
