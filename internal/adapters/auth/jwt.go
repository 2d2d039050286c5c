// Package auth verifies bearer tokens and produces caller identities
package auth

import (
	"fmt"
	"strings"

	perr "funnel/internal/platform/errors"
	"funnel/internal/platform/net/middleware"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds verification parameters for the HS256 signer
type Config struct {
	Secret string
	Issuer string
}

// Verifier validates JWTs and extracts the caller identity claims
type Verifier struct {
	cfg Config
}

// NewVerifier builds a Verifier from config
func NewVerifier(cfg Config) *Verifier {
	return &Verifier{cfg: cfg}
}

// ParseToken validates a raw JWT and returns the caller identity.
// Expected claims: sub (user id), org (org id), role
func (v *Verifier) ParseToken(token string) (middleware.Identity, error) {
	var zero middleware.Identity

	token = strings.TrimSpace(token)
	if token == "" {
		return zero, perr.Unauthorizedf("missing bearer token")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	}
	if v.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.cfg.Issuer))
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(v.cfg.Secret), nil
	}, opts...)
	if err != nil {
		return zero, perr.Unauthorizedf("invalid bearer token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return zero, perr.Unauthorizedf("invalid bearer token")
	}

	sub, _ := claims["sub"].(string)
	org, _ := claims["org"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || org == "" {
		return zero, perr.Unauthorizedf("invalid bearer token")
	}

	return middleware.Identity{UserID: sub, OrgID: org, Role: role}, nil
}

// Sign mints a token for the given identity, used by tests and local tooling
func (v *Verifier) Sign(id middleware.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":  id.UserID,
		"org":  id.OrgID,
		"role": id.Role,
	}
	if v.cfg.Issuer != "" {
		claims["iss"] = v.cfg.Issuer
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(v.cfg.Secret))
}
