// Package repo provides postgres access for activities
package repo

import (
	"context"
	"time"

	"funnel/internal/core/analytics"
	"funnel/internal/modkit/repokit"
	pstrings "funnel/internal/platform/strings"

	"github.com/google/uuid"
)

// Row is one activity row as stored
type Row struct {
	ID          string
	OrgID       string
	Type        string
	Subject     string
	Body        string
	AuthorID    string
	ContactID   string
	DealID      string
	CreatedAt   time.Time
	DueAt       *time.Time
	CompletedAt *time.Time
}

// CreateParams are the insert fields for one activity
type CreateParams struct {
	OrgID     string
	Type      string
	Subject   string
	Body      string
	AuthorID  string
	ContactID string
	DealID    string
	DueAt     *time.Time
}

// UpdateParams are the patch fields, nil means keep current value
type UpdateParams struct {
	Subject     *string
	Body        *string
	DueAt       *time.Time
	CompletedAt *time.Time
}

// Repo is the persistence surface for activities
type Repo interface {
	Insert(ctx context.Context, p CreateParams) (Row, error)
	Get(ctx context.Context, orgID, id string) (Row, error)
	List(ctx context.Context, orgID string, types []string, limit, offset int) ([]Row, int, error)
	Update(ctx context.Context, orgID, id string, p UpdateParams) (Row, error)
	Delete(ctx context.Context, orgID, id string) (bool, error)

	// FetchRange feeds the analytics engine, half-open [start, end+1d) on created_at
	FetchRange(ctx context.Context, orgID string, f analytics.Filter) ([]analytics.Record, error)
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
id::text, org_id::text, type::text, subject, coalesce(body, ''),
author_id::text, coalesce(contact_id::text, ''), coalesce(deal_id::text, ''),
created_at, due_at, completed_at
`

func scanRow(r repokit.Row) (Row, error) {
	var rr Row
	err := r.Scan(
		&rr.ID, &rr.OrgID, &rr.Type, &rr.Subject, &rr.Body,
		&rr.AuthorID, &rr.ContactID, &rr.DealID,
		&rr.CreatedAt, &rr.DueAt, &rr.CompletedAt,
	)
	return rr, err
}

func (r *queries) Insert(ctx context.Context, p CreateParams) (Row, error) {
	const sql = `
insert into activities (id, org_id, type, subject, body, author_id, contact_id, deal_id, due_at, created_at)
values ($1, $2, $3, $4, nullif($5, ''), $6, nullif($7, '')::uuid, nullif($8, '')::uuid, $9, now())
returning ` + rowCols
	id := uuid.NewString()
	return scanRow(r.q.QueryRow(ctx, sql,
		id, p.OrgID, p.Type, p.Subject, p.Body, p.AuthorID, p.ContactID, p.DealID, p.DueAt,
	))
}

func (r *queries) Get(ctx context.Context, orgID, id string) (Row, error) {
	const sql = `select ` + rowCols + ` from activities where org_id = $1 and id = $2`
	return scanRow(r.q.QueryRow(ctx, sql, orgID, id))
}

func (r *queries) List(ctx context.Context, orgID string, types []string, limit, offset int) ([]Row, int, error) {
	const sql = `
select ` + rowCols + `
from activities
where org_id = $1
and (cardinality($2::text[]) = 0 or type = any($2::text[]))
order by created_at desc, id desc
limit $3 offset $4
`
	if types == nil {
		types = []string{}
	}
	rows, err := r.q.Query(ctx, sql, orgID, types, limit, offset)
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
select count(1) from activities
where org_id = $1
and (cardinality($2::text[]) = 0 or type = any($2::text[]))
`
	var total int
	if err := r.q.QueryRow(ctx, countSQL, orgID, types).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *queries) Update(ctx context.Context, orgID, id string, p UpdateParams) (Row, error) {
	const sql = `
update activities set
subject = coalesce($3, subject),
body = coalesce($4, body),
due_at = coalesce($5, due_at),
completed_at = coalesce($6, completed_at)
where org_id = $1 and id = $2
returning ` + rowCols
	return scanRow(r.q.QueryRow(ctx, sql,
		orgID, id, pstrings.SQLNullPtr(p.Subject), pstrings.SQLNullPtr(p.Body), p.DueAt, p.CompletedAt,
	))
}

func (r *queries) Delete(ctx context.Context, orgID, id string) (bool, error) {
	ct, err := r.q.Exec(ctx, `delete from activities where org_id = $1 and id = $2`, orgID, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (r *queries) FetchRange(ctx context.Context, orgID string, f analytics.Filter) ([]analytics.Record, error) {
	const sql = `
select id::text, type::text, created_at, author_id::text, completed_at, due_at
from activities
where org_id = $1
and created_at >= $2 and created_at < $3
and (cardinality($4::text[]) = 0 or type = any($4::text[]))
and (cardinality($5::text[]) = 0 or author_id::text = any($5::text[]))
`
	types := make([]string, 0, len(f.Types))
	for _, t := range f.Types {
		types = append(types, string(t))
	}
	authors := []string{}
	if f.Authors.Kind == analytics.ScopeSet {
		authors = f.Authors.IDs
	}

	endExclusive := analytics.AddDays(f.Range.End, 1)
	rows, err := r.q.Query(ctx, sql, orgID, f.Range.Start, endExclusive, types, authors)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []analytics.Record
	for rows.Next() {
		var rec analytics.Record
		var typ string
		if err := rows.Scan(&rec.ID, &typ, &rec.CreatedAt, &rec.AuthorID, &rec.CompletedAt, &rec.DueAt); err != nil {
			return nil, err
		}
		rec.Type = analytics.ActivityType(typ)
		out = append(out, rec)
	}
	return out, rows.Err()
}
