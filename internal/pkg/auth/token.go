// Package auth mints and verifies the bearer tokens of the admin API and maps
// roles to permissions.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtSigningMethod = jwt.SigningMethodHS256

var (
	ErrSecretIsRequired = errors.New("jwt secret is required")
	ErrIssuerIsRequired = errors.New("jwt issuer is required")
)

type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Claims is the JWT payload. Subject holds the user identifier.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

func Mint(cfg Config, now time.Time, subject string, role Role) (string, error) {
	if cfg.Secret == "" {
		return "", ErrSecretIsRequired
	}
	if cfg.Issuer == "" {
		return "", ErrIssuerIsRequired
	}
	if cfg.TTL <= 0 {
		return "", fmt.Errorf("jwt ttl must be positive, got %s", cfg.TTL)
	}
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("subject is required")
	}
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role %q", role)
	}

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// Parse verifies signature, issuer and expiry and returns the claims.
func Parse(cfg Config, token string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, ErrSecretIsRequired
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", t.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("invalid role %q", claims.Role)
	}
	return claims, nil
}
