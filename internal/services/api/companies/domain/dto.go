// Package domain holds DTOs for companies http and service contracts
package domain

// Company is one account record as returned to clients
type Company struct {
	ID        string `json:"id" example:"d9a1b2c3-2e6f-4d0a-c3b4-5e7f9a1b2c3d"`
	Name      string `json:"name" example:"Acme Corp"`
	Domain    string `json:"domain,omitempty" example:"acme.test"`
	Industry  string `json:"industry,omitempty" example:"Manufacturing"`
	Size      int    `json:"size,omitempty" example:"250"`
	OwnerID   string `json:"owner_id" example:"7d4df9a2-2f0c-4b9e-9a57-6a1f6ce6a3b0"`
	CreatedAt string `json:"created_at" example:"2026-01-03T13:00:00Z"`
	UpdatedAt string `json:"updated_at" example:"2026-01-03T13:00:00Z"`
}

// CreateInput creates one company owned by the caller
type CreateInput struct {
	Name     string `json:"name" validate:"required,min=1,max=200" example:"Acme Corp"`
	Domain   string `json:"domain,omitempty" validate:"omitempty,fqdn"`
	Industry string `json:"industry,omitempty" validate:"omitempty,max=120"`
	Size     int    `json:"size,omitempty" validate:"omitempty,min=1,max=10000000"`
}

// UpdateInput patches one company, absent fields stay untouched
type UpdateInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Domain   *string `json:"domain,omitempty" validate:"omitempty,fqdn"`
	Industry *string `json:"industry,omitempty" validate:"omitempty,max=120"`
	Size     *int    `json:"size,omitempty" validate:"omitempty,min=1,max=10000000"`
}

// ListInput pages org companies
type ListInput struct {
	Search   string `json:"search,omitempty" validate:"omitempty,max=200"`
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}
