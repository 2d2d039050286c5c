// Package api provides the HTTP API for the application
package api

import (
	"funnel/internal/adapters/events"
	"funnel/internal/platform/config"
	"funnel/internal/platform/logger"
	phttp "funnel/internal/platform/net/http"
	"funnel/internal/platform/net/middleware"
	"funnel/internal/platform/store"

	"funnel/internal/modkit"
	"funnel/internal/modkit/httpkit"
	"funnel/internal/modkit/module"
	"funnel/internal/modkit/swaggerkit"

	activitiesmod "funnel/internal/services/api/activities/module"
	companiesmod "funnel/internal/services/api/companies/module"
	contactsmod "funnel/internal/services/api/contacts/module"
	dealsmod "funnel/internal/services/api/deals/module"
	leadsmod "funnel/internal/services/api/leads/module"
	metamod "funnel/internal/services/api/meta/module"
	tagsmod "funnel/internal/services/api/tags/module"
	usersmod "funnel/internal/services/api/users/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	Auth          middleware.AuthPort
	Events        events.Publisher
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// every module except meta sits behind bearer auth
	guard := httpkit.Auth(opt.Auth)

	// users first, its Directory port feeds the analytics engine
	users := usersmod.New(deps, modkit.WithMiddlewares(guard))
	dir := module.MustPortsOf[usersmod.Ports](users).Directory

	activities := activitiesmod.New(
		deps,
		modkit.WithMiddlewares(guard),
		modkit.WithPorts(activitiesmod.Ports{
			Directory: dir,
			Events:    opt.Events,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		users,
		activities,
		contactsmod.New(deps, modkit.WithMiddlewares(guard), modkit.WithPorts(contactsmod.Ports{Events: opt.Events})),
		companiesmod.New(deps, modkit.WithMiddlewares(guard), modkit.WithPorts(companiesmod.Ports{Events: opt.Events})),
		leadsmod.New(deps, modkit.WithMiddlewares(guard), modkit.WithPorts(leadsmod.Ports{Events: opt.Events})),
		dealsmod.New(deps, modkit.WithMiddlewares(guard), modkit.WithPorts(dealsmod.Ports{Events: opt.Events})),
		tagsmod.New(deps, modkit.WithMiddlewares(guard)),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
