package httpkit

import (
	"net/http"
	"testing"

	pnet "funnel/internal/platform/net"
	"funnel/internal/platform/testkit"
)

func newReq() *http.Request {
	req, _ := http.NewRequest(http.MethodGet, "http://x.test/y", nil)
	return req
}

func authedReq(userID, orgID, role string) *http.Request {
	req := newReq()
	ctx := pnet.WithIdentity(req.Context(), userID, orgID, role)
	return req.WithContext(ctx)
}

func TestUser_SuccessAndError(t *testing.T) {
	got, err := User(authedReq("u-123", "o-1", "admin"))
	if err != nil {
		t.Fatalf("User unexpected error: %v", err)
	}
	if got != "u-123" {
		t.Fatalf("User got %q want %q", got, "u-123")
	}

	if _, err := User(newReq()); err == nil {
		t.Fatal("User expected error, got nil")
	}
}

func TestOrg_SuccessAndError(t *testing.T) {
	got, err := Org(authedReq("u-123", "o-999", "admin"))
	if err != nil {
		t.Fatalf("Org unexpected error: %v", err)
	}
	if got != "o-999" {
		t.Fatalf("Org got %q want %q", got, "o-999")
	}

	_, err = Org(newReq())
	if err == nil {
		t.Fatal("Org expected error, got nil")
	}
	if got := err.Error(); got != "missing org scope" {
		t.Fatalf("Org error = %q want %q", got, "missing org scope")
	}
}

func TestRole_DefaultsEmpty(t *testing.T) {
	if got := Role(newReq()); got != "" {
		t.Fatalf("Role on bare request = %q, want empty", got)
	}
	if got := Role(authedReq("u", "o", "manager")); got != "manager" {
		t.Fatalf("Role = %q want %q", got, "manager")
	}
}

func TestMustUser_SuccessAndPanic(t *testing.T) {
	if got := MustUser(authedReq("ok-user", "o", "")); got != "ok-user" {
		t.Fatalf("MustUser got %q want %q", got, "ok-user")
	}

	testkit.MustPanic(t, func() { _ = MustUser(newReq()) })
}

func TestMustOrg_SuccessAndPanic(t *testing.T) {
	if got := MustOrg(authedReq("u", "ok-org", "")); got != "ok-org" {
		t.Fatalf("MustOrg got %q want %q", got, "ok-org")
	}

	testkit.MustPanic(t, func() { _ = MustOrg(newReq()) })
}

func TestJWT_SuccessVariants(t *testing.T) {
	cases := []struct {
		name string
		h    string
		want string
	}{
		{"canonical", "Bearer abc123", "abc123"},
		{"lowercase", "bearer xyz", "xyz"},
		{"weird-case", "BeArEr token", "token"},
		{"extra-spaces", "bearer     stuff", "stuff"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := newReq()
			req.Header.Set("Authorization", tc.h)
			got, err := JWT(req)
			if err != nil {
				t.Fatalf("JWT unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("JWT got %q want %q", got, tc.want)
			}
		})
	}
}

func TestJWT_ErrorPaths(t *testing.T) {
	assertUnauthorized := func(t *testing.T, err error) {
		t.Helper()
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err.Error() != "missing bearer token" {
			t.Fatalf("error = %q want %q", err.Error(), "missing bearer token")
		}
	}

	// missing header
	{
		_, err := JWT(newReq())
		assertUnauthorized(t, err)
	}

	// wrong prefix
	{
		req := newReq()
		req.Header.Set("Authorization", "Token abc")
		_, err := JWT(req)
		assertUnauthorized(t, err)
	}

	// prefix only, no token
	{
		req := newReq()
		req.Header.Set("Authorization", "Bearer")
		_, err := JWT(req)
		assertUnauthorized(t, err)
	}

	// prefix + spaces only
	{
		req := newReq()
		req.Header.Set("Authorization", "Bearer     ")
		_, err := JWT(req)
		assertUnauthorized(t, err)
	}
}

func TestMustJWT_SuccessAndPanic(t *testing.T) {
	req := newReq()
	req.Header.Set("Authorization", "Bearer ok")
	if got := MustJWT(req); got != "ok" {
		t.Fatalf("MustJWT got %q want %q", got, "ok")
	}

	testkit.MustPanic(t, func() { _ = MustJWT(newReq()) })
}
