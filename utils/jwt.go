package utils

import (
	"errors"
	"time"

	"salonkit/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateToken creates a signed JWT for the given subject. Manager tokens
// carry the manage-reservations capability.
func GenerateToken(subject string, manage bool, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":    subject,
		"manage": manage,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseIdentity validates a token string and extracts the caller's user ID
// and whether the token carries the manage-reservations capability.
func ParseIdentity(tokenString string) (string, bool, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return "", false, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false, errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", false, errors.New("token missing subject")
	}
	manage, _ := claims["manage"].(bool)
	return sub, manage, nil
}
