package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session tokens carry nothing but the caller's email. There is no refresh
// flow; an expired token forces the frontend back through the identity
// provider.
const sessionTTL = time.Hour

var jwtSecret []byte

type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func InitJWT(secretKey string) {
	jwtSecret = []byte(secretKey)
}

func GenerateJWT(email string) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("jwt secret is not configured")
	}

	now := time.Now()
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseJWT(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.Email == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// SessionCookieMaxAge is exposed for the cookie-issuing handler so the cookie
// and the token always expire together.
func SessionCookieMaxAge() int {
	return int(sessionTTL.Seconds())
}
