// Package domain holds DTOs for deals, pipelines and stages
package domain

// Deal is one opportunity as returned to clients
type Deal struct {
	ID         string `json:"id" example:"c8f0d2b3-1d5e-4c9f-b2a3-4d6e8f0a1b2c"`
	Title      string `json:"title" example:"Acme expansion Q1"`
	AmountCents int64 `json:"amount_cents" example:"1250000"`
	Currency   string `json:"currency" example:"USD"`
	PipelineID string `json:"pipeline_id" example:"f1c3d4e5-4a8b-4f2c-e5d6-7a9b1c3d4e5f"`
	StageID    string `json:"stage_id" example:"a2d4e5f6-5b9c-4a3d-f6e7-8b0c2d4e5f6a"`
	ContactID  string `json:"contact_id,omitempty"`
	CompanyID  string `json:"company_id,omitempty"`
	Status     string `json:"status" example:"open"`
	OwnerID    string `json:"owner_id"`
	CloseDate  string `json:"close_date,omitempty" example:"2026-03-31"`
	CreatedAt  string `json:"created_at" example:"2026-01-03T13:00:00Z"`
	UpdatedAt  string `json:"updated_at" example:"2026-01-03T13:00:00Z"`
}

// CreateInput creates one deal owned by the caller, status starts as open
type CreateInput struct {
	Title       string `json:"title" validate:"required,min=1,max=300" example:"Acme expansion Q1"`
	AmountCents int64  `json:"amount_cents,omitempty" validate:"omitempty,min=0"`
	Currency    string `json:"currency,omitempty" validate:"omitempty,iso4217" example:"USD"`
	PipelineID  string `json:"pipeline_id" validate:"required,uuid4"`
	StageID     string `json:"stage_id" validate:"required,uuid4"`
	ContactID   string `json:"contact_id,omitempty" validate:"omitempty,uuid4"`
	CompanyID   string `json:"company_id,omitempty" validate:"omitempty,uuid4"`
	CloseDate   string `json:"close_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateInput patches one deal, absent fields stay untouched
type UpdateInput struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	AmountCents *int64  `json:"amount_cents,omitempty" validate:"omitempty,min=0"`
	StageID     *string `json:"stage_id,omitempty" validate:"omitempty,uuid4"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=open won lost"`
	CloseDate   *string `json:"close_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ListInput pages org deals, optionally filtered by pipeline or status
type ListInput struct {
	PipelineID string `json:"pipeline_id,omitempty" validate:"omitempty,uuid4"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=open won lost"`
	Page       int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize   int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}

// Stage is one ordered pipeline step
type Stage struct {
	ID       string `json:"id"`
	Name     string `json:"name" example:"Qualification"`
	Position int    `json:"position" example:"1"`
}

// Pipeline is one sales pipeline with its ordered stages embedded
type Pipeline struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" example:"Default"`
	Stages    []Stage `json:"stages"`
	CreatedAt string  `json:"created_at" example:"2026-01-03T13:00:00Z"`
}

// StageInput is one stage in a pipeline create payload
type StageInput struct {
	Name string `json:"name" validate:"required,min=1,max=120" example:"Qualification"`
}

// CreatePipelineInput creates one pipeline with its stages in order
type CreatePipelineInput struct {
	Name   string       `json:"name" validate:"required,min=1,max=120" example:"Default"`
	Stages []StageInput `json:"stages" validate:"required,min=1,max=20,dive"`
}
