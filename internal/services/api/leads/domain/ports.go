package domain

import "context"

// Identity carries the authenticated caller
type Identity struct {
	UserID string
	OrgID  string
}

// ServicePort is the leads surface other modules may depend on
type ServicePort interface {
	Create(ctx context.Context, ident Identity, in CreateInput) (Lead, error)
	Get(ctx context.Context, orgID, id string) (Lead, error)
	List(ctx context.Context, orgID string, in ListInput) ([]Lead, int, error)
	Update(ctx context.Context, ident Identity, id string, in UpdateInput) (Lead, error)
	Delete(ctx context.Context, ident Identity, id string) error
}
