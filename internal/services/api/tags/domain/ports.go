package domain

import "context"

// ServicePort is the tags surface other modules may depend on
type ServicePort interface {
	Create(ctx context.Context, ident Identity, in CreateInput) (Tag, error)
	Get(ctx context.Context, orgID, id string) (Tag, error)
	List(ctx context.Context, orgID string) ([]Tag, error)
	Update(ctx context.Context, ident Identity, id string, in UpdateInput) (Tag, error)
	Delete(ctx context.Context, ident Identity, id string) error
}
