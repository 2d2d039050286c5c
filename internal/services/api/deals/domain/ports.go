package domain

import "context"

// Identity carries the authenticated caller
type Identity struct {
	UserID string
	OrgID  string
}

// ServicePort is the deals surface other modules may depend on
type ServicePort interface {
	Create(ctx context.Context, ident Identity, in CreateInput) (Deal, error)
	Get(ctx context.Context, orgID, id string) (Deal, error)
	List(ctx context.Context, orgID string, in ListInput) ([]Deal, int, error)
	Update(ctx context.Context, ident Identity, id string, in UpdateInput) (Deal, error)
	Delete(ctx context.Context, ident Identity, id string) error

	ListPipelines(ctx context.Context, orgID string) ([]Pipeline, error)
	CreatePipeline(ctx context.Context, ident Identity, in CreatePipelineInput) (Pipeline, error)
}
