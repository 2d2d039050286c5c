// Package http provides http transport for leads
package http

import (
	stdhttp "net/http"
	"strconv"

	"funnel/internal/modkit/httpkit"
	"funnel/internal/services/api/leads/domain"
	svc "funnel/internal/services/api/leads/service"
)

// Register mounts lead endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PatchJSON[domain.UpdateInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

func ident(r *stdhttp.Request) domain.Identity {
	return domain.Identity{UserID: httpkit.MustUser(r), OrgID: httpkit.MustOrg(r)}
}

// @Summary Create a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Lead"
// @Success 201 {object} domain.Lead "created"
// @Router /leads [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	out, err := h.svc.Create(r.Context(), ident(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// @Summary List leads newest first
// @Tags Leads
// @Produce json
// @Success 200 {array} domain.Lead "ok"
// @Router /leads [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("page_size"))

	items, total, err := h.svc.List(r.Context(), httpkit.MustOrg(r), domain.ListInput{
		Status:   q.Get("status"),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 50
	}
	return httpkit.List(items, total, page, size), nil
}

// @Summary Get one lead
// @Tags Leads
// @Produce json
// @Param id path string true "Lead id"
// @Success 200 {object} domain.Lead "ok"
// @Router /leads/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.MustOrg(r), httpkit.Param(r, "id"))
}

// @Summary Patch one lead
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead id"
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.Lead "ok"
// @Router /leads/{id} [patch]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), ident(r), httpkit.Param(r, "id"), in)
}

// @Summary Delete one lead
// @Tags Leads
// @Param id path string true "Lead id"
// @Success 204 "deleted"
// @Router /leads/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), ident(r), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
