// Package auth verifies the bearer tokens issued by the hosted identity
// provider. The backend never issues tokens itself; it only checks the
// shared-secret signature and extracts the user identity for scoping.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID string `json:"user_id" example:"4f2c9b1e-0b7a-4e2f-9d1c-8a5e6f3b2c1d"`
	Email  string `json:"email" example:"jane.doe@example.com"`
	jwt.RegisteredClaims
}

// AuthService provides token verification
type AuthService struct {
	secret []byte
}

// NewAuthService creates the verification service for the shared secret
func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: []byte(secret)}
}

// ValidateJWT parses and verifies a bearer token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GenerateToken signs a token for the given identity. Used by tests;
// production tokens come from the identity provider.
func (s *AuthService) GenerateToken(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
