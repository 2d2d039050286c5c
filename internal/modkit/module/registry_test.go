package module

import (
	"testing"

	phttp "funnel/internal/platform/net/http"
	"funnel/internal/platform/testkit"
)

type dirPort interface{ Kind() string }

type fakeDir struct{}

func (fakeDir) Kind() string { return "directory" }

type portBundle struct {
	Directory dirPort
}

func TestRegisterAndPortsAs(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	Register("users", portBundle{Directory: fakeDir{}})

	got, ok := PortsAs[portBundle]("users")
	if !ok {
		t.Fatal("PortsAs should find registered bundle")
	}
	if got.Directory.Kind() != "directory" {
		t.Fatalf("bundle = %+v", got)
	}

	if _, ok := PortsAs[portBundle]("missing"); ok {
		t.Fatal("PortsAs should miss unknown names")
	}
	if _, ok := PortsAs[string]("users"); ok {
		t.Fatal("PortsAs should fail on type mismatch")
	}
}

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string               { return m.name }
func (m fakeModule) Ports() any                 { return m.ports }
func (m fakeModule) MountRoutes(_ phttp.Router) {}

func TestPortsOf_StructFieldWalk(t *testing.T) {
	m := fakeModule{name: "users", ports: portBundle{Directory: fakeDir{}}}

	// direct struct assertion
	if _, ok := PortsOf[portBundle](m); !ok {
		t.Fatal("direct bundle assertion failed")
	}

	// field walk: ask for the interface held in a field
	d, ok := PortsOf[dirPort](m)
	if !ok || d.Kind() != "directory" {
		t.Fatalf("field walk failed: %v %v", d, ok)
	}

	// nil ports
	if _, ok := PortsOf[dirPort](fakeModule{name: "empty"}); ok {
		t.Fatal("nil ports should miss")
	}
}

func TestMustPortsOf_PanicsOnMiss(t *testing.T) {
	testkit.MustPanic(t, func() {
		_ = MustPortsOf[dirPort](fakeModule{name: "empty"})
	})
}
