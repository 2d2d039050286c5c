package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perrs "funnel/internal/platform/errors"
	pnet "funnel/internal/platform/net"
)

type portFunc func(r *http.Request) (Identity, error)

func (f portFunc) Parse(r *http.Request) (Identity, error) { return f(r) }

func captureErrWriter(status *int, body *any) func(http.ResponseWriter, int, any) {
	return func(w http.ResponseWriter, s int, b any) {
		*status = s
		*body = b
		w.WriteHeader(s)
	}
}

func TestAuth_NilPortPassesThrough(t *testing.T) {
	t.Parallel()

	called := false
	h := Auth(nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if pnet.UserID(r.Context()) != "" {
			t.Fatal("nil port should leave request unauthenticated")
		}
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	if !called {
		t.Fatal("next handler not reached")
	}
}

func TestAuth_SetsIdentityOnContext(t *testing.T) {
	t.Parallel()

	p := portFunc(func(*http.Request) (Identity, error) {
		return Identity{UserID: "u1", OrgID: "o1", Role: "manager"}, nil
	})

	var status int
	var body any
	h := Auth(p, captureErrWriter(&status, &body))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if pnet.UserID(ctx) != "u1" || pnet.OrgID(ctx) != "o1" || pnet.Role(ctx) != "manager" {
			t.Fatalf("identity not on context: user=%q org=%q role=%q",
				pnet.UserID(ctx), pnet.OrgID(ctx), pnet.Role(ctx))
		}
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	if status != 0 {
		t.Fatalf("error writer invoked with status %d", status)
	}
}

func TestAuth_ParseFailureShortCircuits(t *testing.T) {
	t.Parallel()

	p := portFunc(func(*http.Request) (Identity, error) {
		return Identity{}, perrs.Unauthorizedf("invalid bearer token")
	})

	var status int
	var body any
	reached := false
	h := Auth(p, captureErrWriter(&status, &body))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		reached = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if reached {
		t.Fatal("next handler should not run on auth failure")
	}
	if status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
	if body == nil {
		t.Fatal("expected an error body")
	}
}
