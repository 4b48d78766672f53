package services

import (
	"fmt"
	"time"

	"github.com/gazostheque/gazostheque/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// InitSession sets the signing secret for session tokens. Tokens are
// issued after the external CAS handshake completes; this service only
// mints and verifies the internal principal.
func InitSession(secret string) error {
	if secret == "" {
		return fmt.Errorf("session secret must not be empty")
	}
	jwtSecret = []byte(secret)
	return nil
}

// GenerateToken mints a session token for a user, valid for 7 days.
func GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.UserID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 168).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// VerifyToken validates a session token and returns the user id it
// carries.
func VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid user id in token claims")
	}

	return uint(userID), nil
}
