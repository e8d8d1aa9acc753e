package portalapi

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestTokenExpiry(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	got, err := TokenExpiry(signedToken(t, exp))
	if err != nil {
		t.Fatalf("expiry: %v", err)
	}
	if !got.Equal(exp) {
		t.Fatalf("expiry = %v, want %v", got, exp)
	}
}

func TestTokenExpiresWithin(t *testing.T) {
	t.Parallel()

	soon := signedToken(t, time.Now().Add(30*time.Second))
	later := signedToken(t, time.Now().Add(time.Hour))

	if !TokenExpiresWithin(soon, 2*time.Minute) {
		t.Error("token expiring in 30s must be within 2m window")
	}
	if TokenExpiresWithin(later, 2*time.Minute) {
		t.Error("token expiring in 1h must not be within 2m window")
	}
	// Мусор вместо токена — просто не обновляем
	if TokenExpiresWithin("not-a-jwt", 2*time.Minute) {
		t.Error("garbage token must not trigger refresh")
	}
}
