// Package domain holds DTOs for the users http and service contracts
package domain

// User is the directory projection of an account
type User struct {
	ID        string `json:"id" example:"7d4df9a2-2f0c-4b9e-9a57-6a1f6ce6a3b0"`
	Email     string `json:"email" example:"ada@example.com"`
	Name      string `json:"name" example:"Ada Lovelace"`
	AvatarURL string `json:"avatar_url,omitempty" example:"https://cdn.example.com/a/ada.png"`
	Role      string `json:"role" example:"manager"`
	CreatedAt string `json:"created_at" example:"2026-01-03T13:00:00Z"`
}

// Profile is the minimal projection used for batch lookups
type Profile struct {
	Name      string `json:"name" example:"Ada Lovelace"`
	AvatarURL string `json:"avatar_url,omitempty" example:"https://cdn.example.com/a/ada.png"`
}

// LookupInput requests a batch id to profile resolution
type LookupInput struct {
	IDs []string `json:"ids" validate:"required,min=1,max=100,dive,required"`
}

// ListInput pages through the org directory
type ListInput struct {
	Page     int `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}
