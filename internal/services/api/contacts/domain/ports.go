package domain

import "context"

// Identity carries the authenticated caller
type Identity struct {
	UserID string
	OrgID  string
}

// ServicePort is the contacts surface other modules may depend on
type ServicePort interface {
	Create(ctx context.Context, ident Identity, in CreateInput) (Contact, error)
	Get(ctx context.Context, orgID, id string) (Contact, error)
	List(ctx context.Context, orgID string, in ListInput) ([]Contact, int, error)
	Update(ctx context.Context, ident Identity, id string, in UpdateInput) (Contact, error)
	Delete(ctx context.Context, ident Identity, id string) error
}
