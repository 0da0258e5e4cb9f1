package util

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	jwtSecretByte = []byte(os.Getenv("JWTSECRET"))
	jwtMutex      sync.RWMutex
)

var ErrInvalidStaffToken = errors.New("invalid staff token")

// SetJWTSecret updates the secret used to sign and verify staff tokens.
// Tests that call it should not run in parallel.
func SetJWTSecret(secret string) {
	jwtMutex.Lock()
	defer jwtMutex.Unlock()
	jwtSecretByte = []byte(secret)
}

// GetJWTSecretByte returns a copy of the current secret.
func GetJWTSecretByte() []byte {
	jwtMutex.RLock()
	defer jwtMutex.RUnlock()
	return append([]byte(nil), jwtSecretByte...)
}

// IssueStaffToken signs an HS256 token naming the staff member.
func IssueStaffToken(staffID string, ttl time.Duration) (string, error) {
	secret := GetJWTSecretByte()
	if len(secret) == 0 {
		return "", errors.New("jwt secret is not configured")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": staffID,
		"exp": time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// ParseStaffToken verifies the token and returns the staff id it names.
func ParseStaffToken(tokenString string) (string, error) {
	secret := GetJWTSecretByte()
	if len(secret) == 0 {
		return "", errors.New("jwt secret is not configured")
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidStaffToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidStaffToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidStaffToken
	}
	return sub, nil
}
