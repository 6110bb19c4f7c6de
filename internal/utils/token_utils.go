package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AppClaims extends the registered JWT claims with the user's role so
// handlers can gate privileged operations without a user lookup.
type AppClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a new JWT token with the given parameters.
func GenerateJWT(userID string, role string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	claims := AppClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a JWT token string, validates its signature and
// standard claims, and returns the application claims.
func ParseAndValidateJWT(tokenString string, secretKey string) (*AppClaims, error) {
	claims := &AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
