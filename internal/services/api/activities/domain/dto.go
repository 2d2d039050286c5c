// Package domain holds DTOs for activities http and service contracts
package domain

// Activity is one logged activity as returned to clients
type Activity struct {
	ID          string `json:"id" example:"0a6f3c70-9f3e-4dd3-8f5b-b20c1f4e6a11"`
	Type        string `json:"type" example:"call"`
	Subject     string `json:"subject" example:"Intro call with Acme"`
	Body        string `json:"body,omitempty" example:"Discussed pricing tiers"`
	AuthorID    string `json:"author_id" example:"7d4df9a2-2f0c-4b9e-9a57-6a1f6ce6a3b0"`
	ContactID   string `json:"contact_id,omitempty" example:"b7e9c1a2-0c4d-4b8e-a1f2-3c5d7e9f0a1b"`
	DealID      string `json:"deal_id,omitempty" example:"c8f0d2b3-1d5e-4c9f-b2a3-4d6e8f0a1b2c"`
	CreatedAt   string `json:"created_at" example:"2026-01-03T13:00:00Z"`
	DueAt       string `json:"due_at,omitempty" example:"2026-01-05T09:00:00Z"`
	CompletedAt string `json:"completed_at,omitempty" example:"2026-01-03T15:30:00Z"`
}

// CreateInput creates one activity authored by the caller
type CreateInput struct {
	Type      string `json:"type" validate:"required,oneof=call email meeting note task" example:"call"`
	Subject   string `json:"subject" validate:"required,min=1,max=300" example:"Intro call with Acme"`
	Body      string `json:"body,omitempty" validate:"omitempty,max=10000"`
	ContactID string `json:"contact_id,omitempty" validate:"omitempty,uuid4"`
	DealID    string `json:"deal_id,omitempty" validate:"omitempty,uuid4"`
	DueAt     string `json:"due_at,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2026-01-05T09:00:00Z"`
}

// UpdateInput patches one activity, absent fields stay untouched
type UpdateInput struct {
	Subject     *string `json:"subject,omitempty" validate:"omitempty,min=1,max=300"`
	Body        *string `json:"body,omitempty" validate:"omitempty,max=10000"`
	DueAt       *string `json:"due_at,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	CompletedAt *string `json:"completed_at,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// ListInput pages org activities newest first
type ListInput struct {
	Types    []string `json:"types,omitempty" validate:"omitempty,max=5,dive,oneof=call email meeting note task"`
	Page     int      `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int      `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}

// AnalyticsInput is the analytics query payload
// dates are inclusive ISO day bounds, both optional
type AnalyticsInput struct {
	From  string   `json:"from,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-01-01"`
	To    string   `json:"to,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-01-31"`
	Users []string `json:"users,omitempty" validate:"omitempty,max=100,dive,required"`
	Types []string `json:"types,omitempty" validate:"omitempty,max=5,dive,oneof=call email meeting note task"`
}
