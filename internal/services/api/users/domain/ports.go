package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Lookup(ctx context.Context, orgID string, in LookupInput) (map[string]Profile, error)
	List(ctx context.Context, orgID string, in ListInput) ([]User, int, error)
	Get(ctx context.Context, orgID, id string) (User, error)
}
