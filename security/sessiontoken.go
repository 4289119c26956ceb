package security

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Identity struct {
	Username       string   `json:"unique_name"`
	EmployeeNumber string   `json:"employeeNumber"`
	DeviceID       string   `json:"sid"`
	Authorities    []string `json:"authorities"`
}

type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

// CreateSessionToken signs a session token for a verified login. The
// secret is the base64-encoded HMAC key shared with the middleware.
func CreateSessionToken(identity *Identity, base64Secret string, expiresIn time.Duration) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}
	claims := IdentityClaims{
		Identity: *identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "rcauthy",
			Audience:  []string{"rcauthy-mobile"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}

	// Use HS256 signing method (symmetric key)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretBytes)
}

// DecodeIdentity reads the claims out of a token without verifying the
// signature. The client uses it to inspect authorities after login; only
// the server, which holds the key, verifies.
func DecodeIdentity(tokenStr string) (*Identity, error) {
	parser := jwt.NewParser()

	var claims IdentityClaims
	if _, _, err := parser.ParseUnverified(tokenStr, &claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	return &claims.Identity, nil
}
