// Package domain holds DTOs for tags
package domain

// Tag is one org label as returned to clients
type Tag struct {
	ID        string `json:"id"`
	Name      string `json:"name" example:"enterprise"`
	Color     string `json:"color,omitempty" example:"#1f77b4"`
	CreatedAt string `json:"created_at" example:"2026-01-03T13:00:00Z"`
}

// CreateInput creates one tag
type CreateInput struct {
	Name  string `json:"name" validate:"required,min=1,max=60" example:"enterprise"`
	Color string `json:"color,omitempty" validate:"omitempty,hexcolor" example:"#1f77b4"`
}

// UpdateInput patches one tag, absent fields stay untouched
type UpdateInput struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=60"`
	Color *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// Identity carries the authenticated caller
type Identity struct {
	UserID string
	OrgID  string
}
