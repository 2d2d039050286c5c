package strings

import (
	"testing"

	"funnel/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	def := []string{"a", "b"}
	if got := IfEmpty(nil, def); len(got) != 2 {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	if got := IfEmpty([]string{"x"}, def); len(got) != 1 || got[0] != "x" {
		t.Fatalf("IfEmpty(non-empty) = %v", got)
	}
}

func TestMustString(t *testing.T) {
	t.Parallel()

	if got := MustString("ok", "thing"); got != "ok" {
		t.Fatalf("MustString = %q", got)
	}

	testkit.MustPanic(t, func() { _ = MustString("   ", "thing") })
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"/contacts", "/contacts"},
		{"contacts", "/contacts"},
		{"  /deals/ ", "/deals"},
		{"//tags//", "/tags"},
	}
	for _, c := range cases {
		if got := MustPrefix(c.in); got != c.want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	testkit.MustPanic(t, func() { _ = MustPrefix("/") })
}

func TestPtrAndDeref(t *testing.T) {
	t.Parallel()

	if Ptr("") != nil {
		t.Fatal("Ptr(\"\") should be nil")
	}
	p := Ptr("x")
	if p == nil || *p != "x" {
		t.Fatalf("Ptr = %v", p)
	}
	if Deref(nil) != "" {
		t.Fatal("Deref(nil) should be empty")
	}
	if Deref(p) != "x" {
		t.Fatalf("Deref = %q", Deref(p))
	}
}

func TestSQLNullHelpers(t *testing.T) {
	t.Parallel()

	if SQLNull("  ") != nil {
		t.Fatal("SQLNull(blank) should be nil")
	}
	if SQLNull("v") != "v" {
		t.Fatal("SQLNull(value) should pass through")
	}
	if SQLNullPtr(nil) != nil {
		t.Fatal("SQLNullPtr(nil) should be nil")
	}
	blank := "   "
	if SQLNullPtr(&blank) != nil {
		t.Fatal("SQLNullPtr(blank) should be nil")
	}
	v := "v"
	if SQLNullPtr(&v) != "v" {
		t.Fatal("SQLNullPtr(value) should deref")
	}
}
