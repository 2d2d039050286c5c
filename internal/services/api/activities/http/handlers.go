// Package http provides http transport for activities
package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	"funnel/internal/modkit/httpkit"
	"funnel/internal/services/api/activities/domain"
	svc "funnel/internal/services/api/activities/service"
)

// Register mounts activities endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// the analytics engine entrypoint
	httpkit.PostJSON[domain.AnalyticsInput](r, "/analytics", h.analytics)

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PatchJSON[domain.UpdateInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

func ident(r *stdhttp.Request) domain.Identity {
	return domain.Identity{
		UserID: httpkit.MustUser(r),
		OrgID:  httpkit.MustOrg(r),
		Role:   httpkit.Role(r),
	}
}

// swagger:route POST /activities/analytics Activities activitiesAnalytics
// @Summary Activity analytics for a date range
// @Tags Activities
// @Accept json
// @Produce json
// @Param payload body domain.AnalyticsInput true "Query"
// @Success 200 {object} analytics.Response "ok"
// @Router /activities/analytics [post]
func (h *handlers) analytics(r *stdhttp.Request, in domain.AnalyticsInput) (any, error) {
	return h.svc.Analytics(r.Context(), ident(r), in)
}

// swagger:route POST /activities Activities activitiesCreate
// @Summary Log an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Activity"
// @Success 201 {object} domain.Activity "created"
// @Router /activities [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	out, err := h.svc.Create(r.Context(), ident(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// swagger:route GET /activities Activities activitiesList
// @Summary List activities newest first
// @Tags Activities
// @Produce json
// @Success 200 {array} domain.Activity "ok"
// @Router /activities [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("page_size"))

	var types []string
	if raw := q.Get("types"); raw != "" {
		types = strings.Split(raw, ",")
	}

	items, total, err := h.svc.List(r.Context(), httpkit.MustOrg(r), domain.ListInput{
		Types:    types,
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

// swagger:route GET /activities/{id} Activities activitiesGet
// @Summary Get one activity
// @Tags Activities
// @Produce json
// @Param id path string true "Activity id"
// @Success 200 {object} domain.Activity "ok"
// @Router /activities/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.MustOrg(r), httpkit.Param(r, "id"))
}

// swagger:route PATCH /activities/{id} Activities activitiesUpdate
// @Summary Patch one activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Activity id"
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.Activity "ok"
// @Router /activities/{id} [patch]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), ident(r), httpkit.Param(r, "id"), in)
}

// swagger:route DELETE /activities/{id} Activities activitiesDelete
// @Summary Delete one activity
// @Tags Activities
// @Param id path string true "Activity id"
// @Success 204 "deleted"
// @Router /activities/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), ident(r), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
