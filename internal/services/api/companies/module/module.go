// Package module wires companies into the API using modkit
package module

import (
	"net/http"

	"funnel/internal/adapters/events"
	modkit "funnel/internal/modkit"
	"funnel/internal/modkit/httpkit"
	str "funnel/internal/platform/strings"
	companieshttp "funnel/internal/services/api/companies/http"
	companiesrepo "funnel/internal/services/api/companies/repo"
	companiessvc "funnel/internal/services/api/companies/service"
)

// Ports declares the cross module dependencies injected into this module
type Ports struct {
	Events events.Publisher
}

// Module implements the companies module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc companiessvc.Service
}

// New constructs the companies module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("companies"), modkit.WithPrefix("/companies")}, opts...)...)

	var in Ports
	if p, ok := b.Ports.(Ports); ok {
		in = p
	}

	repo := companiesrepo.NewPG()
	svc := companiessvc.New(deps.PG, repo, in.Events)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = struct{}{}

	external := b.Register
	m.register = func(r httpkit.Router) {
		companieshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
