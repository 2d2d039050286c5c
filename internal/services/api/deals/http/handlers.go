// Package http provides http transport for deals and pipelines
package http

import (
	stdhttp "net/http"
	"strconv"

	"funnel/internal/modkit/httpkit"
	"funnel/internal/services/api/deals/domain"
	svc "funnel/internal/services/api/deals/service"
)

// Register mounts deal and pipeline endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// static pipeline routes sit before the {id} wildcard
	httpkit.Get(r, "/pipelines", h.listPipelines)
	httpkit.PostJSON[domain.CreatePipelineInput](r, "/pipelines", h.createPipeline)

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

// @Summary Create a deal
// @Tags Deals
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Deal"
// @Success 201 {object} domain.Deal "created"
// @Router /deals [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	out, err := h.svc.Create(r.Context(), ident(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// @Summary List deals newest first
// @Tags Deals
// @Produce json
// @Success 200 {array} domain.Deal "ok"
// @Router /deals [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("page_size"))

	items, total, err := h.svc.List(r.Context(), httpkit.MustOrg(r), domain.ListInput{
		PipelineID: q.Get("pipeline_id"),
		Status:     q.Get("status"),
		Page:       page,
		PageSize:   size,
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

// @Summary Get one deal
// @Tags Deals
// @Produce json
// @Param id path string true "Deal id"
// @Success 200 {object} domain.Deal "ok"
// @Router /deals/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.MustOrg(r), httpkit.Param(r, "id"))
}

// @Summary Patch one deal
// @Tags Deals
// @Accept json
// @Produce json
// @Param id path string true "Deal id"
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.Deal "ok"
// @Router /deals/{id} [patch]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), ident(r), httpkit.Param(r, "id"), in)
}

// @Summary Delete one deal
// @Tags Deals
// @Param id path string true "Deal id"
// @Success 204 "deleted"
// @Router /deals/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), ident(r), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary List pipelines with stages
// @Tags Deals
// @Produce json
// @Success 200 {array} domain.Pipeline "ok"
// @Router /deals/pipelines [get]
func (h *handlers) listPipelines(r *stdhttp.Request) (any, error) {
	return h.svc.ListPipelines(r.Context(), httpkit.MustOrg(r))
}

// @Summary Create a pipeline with its stages
// @Tags Deals
// @Accept json
// @Produce json
// @Param payload body domain.CreatePipelineInput true "Pipeline"
// @Success 201 {object} domain.Pipeline "created"
// @Router /deals/pipelines [post]
func (h *handlers) createPipeline(r *stdhttp.Request, in domain.CreatePipelineInput) (any, error) {
	out, err := h.svc.CreatePipeline(r.Context(), ident(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}
