package httpkit

import (
	"testing"

	perrs "funnel/internal/platform/errors"
	"funnel/internal/platform/net/middleware"
)

func TestPort_ParseDelegatesToTokenFunc(t *testing.T) {
	p := NewPortFunc(func(token string) (middleware.Identity, error) {
		if token != "tok-1" {
			t.Fatalf("token = %q", token)
		}
		return middleware.Identity{UserID: "u1", OrgID: "o1", Role: "admin"}, nil
	})

	req := newReq()
	req.Header.Set("Authorization", "Bearer tok-1")
	id, err := p.Parse(req)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if id.UserID != "u1" || id.OrgID != "o1" || id.Role != "admin" {
		t.Fatalf("identity = %+v", id)
	}
}

func TestPort_ParseRejections(t *testing.T) {
	called := false
	p := NewPortFunc(func(string) (middleware.Identity, error) {
		called = true
		return middleware.Identity{}, nil
	})

	cases := []struct {
		name string
		h    string
	}{
		{"missing", ""},
		{"wrong scheme", "Basic dXNlcg=="},
		{"bare word", "Bearer"},
		{"spaces only", "Bearer    "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := newReq()
			if tc.h != "" {
				req.Header.Set("Authorization", tc.h)
			}
			_, err := p.Parse(req)
			if err == nil {
				t.Fatal("expected error")
			}
			if !perrs.IsCode(err, perrs.ErrorCodeUnauthorized) {
				t.Fatalf("code = %v, want unauthorized", perrs.CodeOf(err))
			}
		})
	}
	if called {
		t.Fatal("token func should not run for malformed headers")
	}
}

func TestPort_ParserErrorMapsToUnauthorized(t *testing.T) {
	p := NewPortFunc(func(string) (middleware.Identity, error) {
		return middleware.Identity{}, perrs.Internalf("boom")
	})
	req := newReq()
	req.Header.Set("Authorization", "Bearer anything")
	_, err := p.Parse(req)
	if !perrs.IsCode(err, perrs.ErrorCodeUnauthorized) {
		t.Fatalf("code = %v, want unauthorized", perrs.CodeOf(err))
	}
}

func TestPort_NilParserRejects(t *testing.T) {
	p := NewPortFunc(nil)
	req := newReq()
	req.Header.Set("Authorization", "Bearer anything")
	if _, err := p.Parse(req); err == nil {
		t.Fatal("expected error for nil parser")
	}
}
