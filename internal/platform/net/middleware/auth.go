package middleware

import (
	"net/http"

	"funnel/internal/platform/logger"
	pnet "funnel/internal/platform/net"
)

// Identity is the authenticated caller extracted from a request
type Identity struct {
	UserID string
	OrgID  string
	Role   string
}

// AuthPort is the seam an auth adapter implements
type AuthPort interface {
	// Parse returns the caller identity from the request or an error
	Parse(r *http.Request) (Identity, error)
}

// Auth resolves the caller identity and stores it on the request context.
// A nil port leaves requests unauthenticated (useful in tests)
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			id, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithIdentity(r.Context(), id.UserID, id.OrgID, id.Role)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), id.OrgID)
			ctx = logger.WithUser(ctx, id.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
