// Package http provides http transport for the user directory
package http

import (
	stdhttp "net/http"
	"strconv"

	"funnel/internal/modkit/httpkit"
	"funnel/internal/services/api/users/domain"
	svc "funnel/internal/services/api/users/service"
)

// Register mounts users endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// batch id -> profile resolution
	httpkit.PostJSON[domain.LookupInput](r, "/lookup", h.lookup)

	// org directory
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /users/lookup Users usersLookup
// @Summary Batch resolve user ids to display profiles
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.LookupInput true "Ids"
// @Success 200 {object} map[string]domain.Profile "ok"
// @Router /users/lookup [post]
func (h *handlers) lookup(r *stdhttp.Request, in domain.LookupInput) (any, error) {
	return h.svc.Lookup(r.Context(), httpkit.MustOrg(r), in)
}

// swagger:route GET /users Users usersList
// @Summary List org members
// @Tags Users
// @Produce json
// @Success 200 {array} domain.User "ok"
// @Router /users [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("page_size"))

	users, total, err := h.svc.List(r.Context(), httpkit.MustOrg(r), domain.ListInput{Page: page, PageSize: size})
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 50
	}
	return httpkit.List(users, total, page, size), nil
}

// swagger:route GET /users/{id} Users usersGet
// @Summary Get one org member
// @Tags Users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} domain.User "ok"
// @Router /users/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.MustOrg(r), httpkit.Param(r, "id"))
}
