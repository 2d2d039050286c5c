// Package repo provides postgres access for deals, pipelines and stages
package repo

import (
	"context"
	"time"

	"funnel/internal/modkit/repokit"
	pstrings "funnel/internal/platform/strings"

	"github.com/google/uuid"
)

// Row is one deal row as stored
type Row struct {
	ID          string
	OrgID       string
	Title       string
	AmountCents int64
	Currency    string
	PipelineID  string
	StageID     string
	ContactID   string
	CompanyID   string
	Status      string
	OwnerID     string
	CloseDate   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PipelineRow is one pipeline row as stored
type PipelineRow struct {
	ID        string
	OrgID     string
	Name      string
	CreatedAt time.Time
}

// StageRow is one stage row as stored
type StageRow struct {
	ID         string
	PipelineID string
	Name       string
	Position   int
}

// CreateParams are the insert fields for one deal
type CreateParams struct {
	OrgID       string
	Title       string
	AmountCents int64
	Currency    string
	PipelineID  string
	StageID     string
	ContactID   string
	CompanyID   string
	OwnerID     string
	CloseDate   *time.Time
}

// UpdateParams are the patch fields, nil means keep current value
type UpdateParams struct {
	Title       *string
	AmountCents *int64
	StageID     *string
	Status      *string
	CloseDate   *time.Time
}

// ListParams narrow a deal listing
type ListParams struct {
	PipelineID string
	Status     string
	Limit      int
	Offset     int
}

// Repo is the persistence surface for deals and pipelines
type Repo interface {
	Insert(ctx context.Context, p CreateParams) (Row, error)
	Get(ctx context.Context, orgID, id string) (Row, error)
	List(ctx context.Context, orgID string, p ListParams) ([]Row, int, error)
	Update(ctx context.Context, orgID, id string, p UpdateParams) (Row, error)
	Delete(ctx context.Context, orgID, id string) (bool, error)

	ListPipelines(ctx context.Context, orgID string) ([]PipelineRow, error)
	ListStages(ctx context.Context, pipelineIDs []string) ([]StageRow, error)
	InsertPipeline(ctx context.Context, orgID, name string) (PipelineRow, error)
	InsertStage(ctx context.Context, pipelineID, name string, position int) (StageRow, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const rowCols = `
id::text, org_id::text, title, amount_cents, coalesce(currency, 'USD'),
pipeline_id::text, stage_id::text,
coalesce(contact_id::text, ''), coalesce(company_id::text, ''),
status, owner_id::text, close_date, created_at, updated_at
`

func scanRow(r repokit.Row) (Row, error) {
	var rr Row
	err := r.Scan(
		&rr.ID, &rr.OrgID, &rr.Title, &rr.AmountCents, &rr.Currency,
		&rr.PipelineID, &rr.StageID, &rr.ContactID, &rr.CompanyID,
		&rr.Status, &rr.OwnerID, &rr.CloseDate, &rr.CreatedAt, &rr.UpdatedAt,
	)
	return rr, err
}

func (r *queries) Insert(ctx context.Context, p CreateParams) (Row, error) {
	const sql = `
insert into deals (
	id, org_id, title, amount_cents, currency, pipeline_id, stage_id,
	contact_id, company_id, status, owner_id, close_date, created_at, updated_at
)
values (
	$1, $2, $3, $4, coalesce(nullif($5, ''), 'USD'), $6, $7,
	nullif($8, '')::uuid, nullif($9, '')::uuid, 'open', $10, $11, now(), now()
)
returning ` + rowCols
	return scanRow(r.q.QueryRow(ctx, sql,
		uuid.NewString(), p.OrgID, p.Title, p.AmountCents, p.Currency, p.PipelineID, p.StageID,
		p.ContactID, p.CompanyID, p.OwnerID, p.CloseDate,
	))
}

func (r *queries) Get(ctx context.Context, orgID, id string) (Row, error) {
	const sql = `select ` + rowCols + ` from deals where org_id = $1 and id = $2`
	return scanRow(r.q.QueryRow(ctx, sql, orgID, id))
}

func (r *queries) List(ctx context.Context, orgID string, p ListParams) ([]Row, int, error) {
	const sql = `
select ` + rowCols + `
from deals
where org_id = $1
and ($2 = '' or pipeline_id::text = $2)
and ($3 = '' or status = $3)
order by created_at desc, id desc
limit $4 offset $5
`
	rows, err := r.q.Query(ctx, sql, orgID, p.PipelineID, p.Status, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var out []Row
	for rows.Next() {
		rr, err := scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	const countSQL = `
select count(1) from deals
where org_id = $1
and ($2 = '' or pipeline_id::text = $2)
and ($3 = '' or status = $3)
`
	var total int
	if err := r.q.QueryRow(ctx, countSQL, orgID, p.PipelineID, p.Status).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *queries) Update(ctx context.Context, orgID, id string, p UpdateParams) (Row, error) {
	const sql = `
update deals set
title = coalesce($3, title),
amount_cents = coalesce($4, amount_cents),
stage_id = coalesce($5::uuid, stage_id),
status = coalesce($6, status),
close_date = coalesce($7, close_date),
updated_at = now()
where org_id = $1 and id = $2
returning ` + rowCols
	var amount any
	if p.AmountCents != nil {
		amount = *p.AmountCents
	}
	return scanRow(r.q.QueryRow(ctx, sql,
		orgID, id,
		pstrings.SQLNullPtr(p.Title), amount, pstrings.SQLNullPtr(p.StageID),
		pstrings.SQLNullPtr(p.Status), p.CloseDate,
	))
}

func (r *queries) Delete(ctx context.Context, orgID, id string) (bool, error) {
	ct, err := r.q.Exec(ctx, `delete from deals where org_id = $1 and id = $2`, orgID, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (r *queries) ListPipelines(ctx context.Context, orgID string) ([]PipelineRow, error) {
	const sql = `
select id::text, org_id::text, name, created_at
from pipelines
where org_id = $1
order by created_at asc, id asc
`
	rows, err := r.q.Query(ctx, sql, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PipelineRow
	for rows.Next() {
		var pr PipelineRow
		if err := rows.Scan(&pr.ID, &pr.OrgID, &pr.Name, &pr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}

func (r *queries) ListStages(ctx context.Context, pipelineIDs []string) ([]StageRow, error) {
	const sql = `
select id::text, pipeline_id::text, name, position
from pipeline_stages
where pipeline_id::text = any($1)
order by pipeline_id, position asc
`
	if pipelineIDs == nil {
		pipelineIDs = []string{}
	}
	rows, err := r.q.Query(ctx, sql, pipelineIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []StageRow
	for rows.Next() {
		var sr StageRow
		if err := rows.Scan(&sr.ID, &sr.PipelineID, &sr.Name, &sr.Position); err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

func (r *queries) InsertPipeline(ctx context.Context, orgID, name string) (PipelineRow, error) {
	const sql = `
insert into pipelines (id, org_id, name, created_at)
values ($1, $2, $3, now())
returning id::text, org_id::text, name, created_at
`
	var pr PipelineRow
	err := r.q.QueryRow(ctx, sql, uuid.NewString(), orgID, name).Scan(&pr.ID, &pr.OrgID, &pr.Name, &pr.CreatedAt)
	return pr, err
}

func (r *queries) InsertStage(ctx context.Context, pipelineID, name string, position int) (StageRow, error) {
	const sql = `
insert into pipeline_stages (id, pipeline_id, name, position)
values ($1, $2, $3, $4)
returning id::text, pipeline_id::text, name, position
`
	var sr StageRow
	err := r.q.QueryRow(ctx, sql, uuid.NewString(), pipelineID, name, position).Scan(&sr.ID, &sr.PipelineID, &sr.Name, &sr.Position)
	return sr, err
}
