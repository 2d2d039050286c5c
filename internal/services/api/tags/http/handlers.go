// Package http provides http transport for tags
package http

import (
	stdhttp "net/http"

	"funnel/internal/modkit/httpkit"
	"funnel/internal/services/api/tags/domain"
	svc "funnel/internal/services/api/tags/service"
)

// Register mounts tag endpoints on the given router
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

// @Summary Create a tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Tag"
// @Success 201 {object} domain.Tag "created"
// @Router /tags [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	out, err := h.svc.Create(r.Context(), ident(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// @Summary List tags sorted by name
// @Tags Tags
// @Produce json
// @Success 200 {array} domain.Tag "ok"
// @Router /tags [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), httpkit.MustOrg(r))
}

// @Summary Get one tag
// @Tags Tags
// @Produce json
// @Param id path string true "Tag id"
// @Success 200 {object} domain.Tag "ok"
// @Router /tags/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.MustOrg(r), httpkit.Param(r, "id"))
}

// @Summary Patch one tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param id path string true "Tag id"
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.Tag "ok"
// @Router /tags/{id} [patch]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), ident(r), httpkit.Param(r, "id"), in)
}

// @Summary Delete one tag
// @Tags Tags
// @Param id path string true "Tag id"
// @Success 204 "deleted"
// @Router /tags/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), ident(r), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
