package domain

import "context"

// Identity carries the authenticated caller
type Identity struct {
	UserID string
	OrgID  string
}

// ServicePort is the companies surface other modules may depend on
type ServicePort interface {
	Create(ctx context.Context, ident Identity, in CreateInput) (Company, error)
	Get(ctx context.Context, orgID, id string) (Company, error)
	List(ctx context.Context, orgID string, in ListInput) ([]Company, int, error)
	Update(ctx context.Context, ident Identity, id string, in UpdateInput) (Company, error)
	Delete(ctx context.Context, ident Identity, id string) error
}
