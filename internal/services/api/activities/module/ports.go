package module

import (
	"context"

	"funnel/internal/core/analytics"
	"funnel/internal/services/api/activities/domain"
	activitiessvc "funnel/internal/services/api/activities/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptActivitiesPort struct{ svc activitiessvc.Service }

// Analytics runs the aggregation engine for the caller
func (a adaptActivitiesPort) Analytics(
	ctx context.Context,
	ident domain.Identity,
	in domain.AnalyticsInput,
) (*analytics.Response, error) {
	return a.svc.Analytics(ctx, ident, in)
}
