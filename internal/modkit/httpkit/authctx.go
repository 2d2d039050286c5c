package httpkit

import (
	"net/http"
	"strings"

	perrs "funnel/internal/platform/errors"
	pnet "funnel/internal/platform/net"
)

// User returns the authenticated user id from the request context
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return uid, nil
}

// Org returns the authenticated org id from the request context
func Org(r *http.Request) (string, error) {
	oid := pnet.OrgID(r.Context())
	if oid == "" {
		return "", perrs.Unauthorizedf("missing org scope")
	}
	return oid, nil
}

// Role returns the caller role string, empty when unauthenticated
func Role(r *http.Request) string {
	return pnet.Role(r.Context())
}

// MustUser returns the authenticated user id or panics
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}

// MustOrg returns the authenticated org id or panics
func MustOrg(r *http.Request) string {
	oid, err := Org(r)
	if err != nil {
		panic(err)
	}
	return oid
}

// JWT returns the raw bearer token from the Authorization header
func JWT(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if strings.TrimSpace(authz) == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	// case-insensitive Bearer prefix (don't trim the whole header first)
	const prefix = "bearer "
	if len(authz) < len(prefix) || strings.ToLower(authz[:len(prefix)]) != prefix {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}

// MustJWT returns the raw bearer token or panics
// only use on routes protected by the auth middleware
func MustJWT(r *http.Request) string {
	raw, err := JWT(r)
	if err != nil {
		panic(err)
	}
	return raw
}
