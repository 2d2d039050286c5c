// Package repo provides postgres access for companies
package repo

import (
	"context"
	"time"

	"funnel/internal/modkit/repokit"
	pstrings "funnel/internal/platform/strings"

	"github.com/google/uuid"
)

// Row is one company row as stored
type Row struct {
	ID        string
	OrgID     string
	Name      string
	Domain    string
	Industry  string
	Size      int
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateParams are the insert fields for one company
type CreateParams struct {
	OrgID    string
	Name     string
	Domain   string
	Industry string
	Size     int
	OwnerID  string
}

// UpdateParams are the patch fields, nil means keep current value
type UpdateParams struct {
	Name     *string
	Domain   *string
	Industry *string
	Size     *int
}

// Repo is the persistence surface for companies
type Repo interface {
	Insert(ctx context.Context, p CreateParams) (Row, error)
	Get(ctx context.Context, orgID, id string) (Row, error)
	List(ctx context.Context, orgID, search string, limit, offset int) ([]Row, int, error)
	Update(ctx context.Context, orgID, id string, p UpdateParams) (Row, error)
	Delete(ctx context.Context, orgID, id string) (bool, error)
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
id::text, org_id::text, name, coalesce(domain, ''), coalesce(industry, ''),
coalesce(size, 0), owner_id::text, created_at, updated_at
`

func scanRow(r repokit.Row) (Row, error) {
	var rr Row
	err := r.Scan(
		&rr.ID, &rr.OrgID, &rr.Name, &rr.Domain, &rr.Industry,
		&rr.Size, &rr.OwnerID, &rr.CreatedAt, &rr.UpdatedAt,
	)
	return rr, err
}

func (r *queries) Insert(ctx context.Context, p CreateParams) (Row, error) {
	const sql = `
insert into companies (id, org_id, name, domain, industry, size, owner_id, created_at, updated_at)
values ($1, $2, $3, nullif($4, ''), nullif($5, ''), nullif($6, 0), $7, now(), now())
returning ` + rowCols
	return scanRow(r.q.QueryRow(ctx, sql,
		uuid.NewString(), p.OrgID, p.Name, p.Domain, p.Industry, p.Size, p.OwnerID,
	))
}

func (r *queries) Get(ctx context.Context, orgID, id string) (Row, error) {
	const sql = `select ` + rowCols + ` from companies where org_id = $1 and id = $2`
	return scanRow(r.q.QueryRow(ctx, sql, orgID, id))
}

func (r *queries) List(ctx context.Context, orgID, search string, limit, offset int) ([]Row, int, error) {
	const sql = `
select ` + rowCols + `
from companies
where org_id = $1
and ($2 = '' or name ilike '%' || $2 || '%' or domain ilike '%' || $2 || '%')
order by name asc, id asc
limit $3 offset $4
`
	rows, err := r.q.Query(ctx, sql, orgID, search, limit, offset)
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
select count(1) from companies
where org_id = $1
and ($2 = '' or name ilike '%' || $2 || '%' or domain ilike '%' || $2 || '%')
`
	var total int
	if err := r.q.QueryRow(ctx, countSQL, orgID, search).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *queries) Update(ctx context.Context, orgID, id string, p UpdateParams) (Row, error) {
	const sql = `
update companies set
name = coalesce($3, name),
domain = coalesce($4, domain),
industry = coalesce($5, industry),
size = coalesce($6, size),
updated_at = now()
where org_id = $1 and id = $2
returning ` + rowCols
	var size any
	if p.Size != nil {
		size = *p.Size
	}
	return scanRow(r.q.QueryRow(ctx, sql,
		orgID, id,
		pstrings.SQLNullPtr(p.Name), pstrings.SQLNullPtr(p.Domain), pstrings.SQLNullPtr(p.Industry), size,
	))
}

func (r *queries) Delete(ctx context.Context, orgID, id string) (bool, error) {
	ct, err := r.q.Exec(ctx, `delete from companies where org_id = $1 and id = $2`, orgID, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
