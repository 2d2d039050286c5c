// Package domain holds DTOs for leads http and service contracts
package domain

// Lead is one unqualified prospect as returned to clients
type Lead struct {
	ID        string `json:"id" example:"e0b2c3d4-3f7a-4e1b-d4c5-6f8a0b2c3d4e"`
	Name      string `json:"name" example:"Alan Kay"`
	Email     string `json:"email,omitempty" example:"alan@prospect.test"`
	Phone     string `json:"phone,omitempty" example:"+1 555 0101"`
	Source    string `json:"source,omitempty" example:"webform"`
	Status    string `json:"status" example:"new"`
	OwnerID   string `json:"owner_id" example:"7d4df9a2-2f0c-4b9e-9a57-6a1f6ce6a3b0"`
	CreatedAt string `json:"created_at" example:"2026-01-03T13:00:00Z"`
	UpdatedAt string `json:"updated_at" example:"2026-01-03T13:00:00Z"`
}

// CreateInput creates one lead owned by the caller, status starts as new
type CreateInput struct {
	Name   string `json:"name" validate:"required,min=1,max=200" example:"Alan Kay"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	Phone  string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Source string `json:"source,omitempty" validate:"omitempty,max=120" example:"webform"`
}

// UpdateInput patches one lead, absent fields stay untouched
type UpdateInput struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone  *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Source *string `json:"source,omitempty" validate:"omitempty,max=120"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified lost"`
}

// ListInput pages org leads, optionally filtered by status
type ListInput struct {
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified lost"`
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}
