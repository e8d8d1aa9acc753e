package portalapi

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry достаёт exp из bearer-токена без проверки подписи.
// Подпись проверяет бэкенд; нам достаточно знать, когда токен истечёт,
// чтобы успеть обновить его заранее.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no exp claim")
	}
	return exp.Time, nil
}

// TokenExpiresWithin — истечёт ли токен в ближайшее окно
func TokenExpiresWithin(token string, window time.Duration) bool {
	exp, err := TokenExpiry(token)
	if err != nil {
		return false
	}
	return time.Until(exp) < window
}
