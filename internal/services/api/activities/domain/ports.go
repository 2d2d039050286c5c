package domain

import (
	"context"

	"funnel/internal/core/analytics"
)

// Identity is the authenticated caller as seen by this module
type Identity struct {
	UserID string
	OrgID  string
	Role   string
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Create(ctx context.Context, ident Identity, in CreateInput) (Activity, error)
	Get(ctx context.Context, orgID, id string) (Activity, error)
	List(ctx context.Context, orgID string, in ListInput) ([]Activity, int, error)
	Update(ctx context.Context, ident Identity, id string, in UpdateInput) (Activity, error)
	Delete(ctx context.Context, ident Identity, id string) error

	Analytics(ctx context.Context, ident Identity, in AnalyticsInput) (*analytics.Response, error)
}
