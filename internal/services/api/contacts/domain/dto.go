// Package domain holds DTOs for contacts http and service contracts
package domain

// Contact is one person record as returned to clients
type Contact struct {
	ID        string `json:"id" example:"b7e9c1a2-0c4d-4b8e-a1f2-3c5d7e9f0a1b"`
	Name      string `json:"name" example:"Grace Hopper"`
	Email     string `json:"email,omitempty" example:"grace@acme.test"`
	Phone     string `json:"phone,omitempty" example:"+1 555 0100"`
	Title     string `json:"title,omitempty" example:"VP Engineering"`
	CompanyID string `json:"company_id,omitempty" example:"d9a1b2c3-2e6f-4d0a-c3b4-5e7f9a1b2c3d"`
	OwnerID   string `json:"owner_id" example:"7d4df9a2-2f0c-4b9e-9a57-6a1f6ce6a3b0"`
	CreatedAt string `json:"created_at" example:"2026-01-03T13:00:00Z"`
	UpdatedAt string `json:"updated_at" example:"2026-01-03T13:00:00Z"`
}

// CreateInput creates one contact owned by the caller
type CreateInput struct {
	Name      string `json:"name" validate:"required,min=1,max=200" example:"Grace Hopper"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Title     string `json:"title,omitempty" validate:"omitempty,max=200"`
	CompanyID string `json:"company_id,omitempty" validate:"omitempty,uuid4"`
}

// UpdateInput patches one contact, absent fields stay untouched
type UpdateInput struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Title     *string `json:"title,omitempty" validate:"omitempty,max=200"`
	CompanyID *string `json:"company_id,omitempty" validate:"omitempty,uuid4"`
}

// ListInput pages org contacts
type ListInput struct {
	Search   string `json:"search,omitempty" validate:"omitempty,max=200"`
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}
