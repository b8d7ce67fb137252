package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("upstream-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestTokenExpired(t *testing.T) {
	live := signedToken(t, jwt.MapClaims{"id": 7, "exp": time.Now().Add(time.Hour).Unix()})
	if TokenExpired(live) {
		t.Error("token expiring in an hour reported expired")
	}

	dead := signedToken(t, jwt.MapClaims{"id": 7, "exp": time.Now().Add(-time.Hour).Unix()})
	if !TokenExpired(dead) {
		t.Error("token expired an hour ago reported live")
	}
}

func TestTokenExpiredMalformed(t *testing.T) {
	if !TokenExpired("not-a-jwt") {
		t.Error("malformed token should count as expired")
	}
}

func TestTokenWithoutExpClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"id": 7})
	if TokenExpired(token) {
		t.Error("token without exp claim should not count as expired")
	}
}
