// Package repo provides postgres access for tags
package repo

import (
	"context"
	"time"

	"funnel/internal/modkit/repokit"
	pstrings "funnel/internal/platform/strings"

	"github.com/google/uuid"
)

// Row is one tag row as stored
type Row struct {
	ID        string
	OrgID     string
	Name      string
	Color     string
	CreatedAt time.Time
}

// Repo is the persistence surface for tags
type Repo interface {
	Insert(ctx context.Context, orgID, name, color string) (Row, error)
	Get(ctx context.Context, orgID, id string) (Row, error)
	List(ctx context.Context, orgID string) ([]Row, error)
	Update(ctx context.Context, orgID, id string, name, color *string) (Row, error)
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

const rowCols = `id::text, org_id::text, name, coalesce(color, ''), created_at`

func scanRow(r repokit.Row) (Row, error) {
	var rr Row
	err := r.Scan(&rr.ID, &rr.OrgID, &rr.Name, &rr.Color, &rr.CreatedAt)
	return rr, err
}

func (r *queries) Insert(ctx context.Context, orgID, name, color string) (Row, error) {
	const sql = `
insert into tags (id, org_id, name, color, created_at)
values ($1, $2, $3, nullif($4, ''), now())
returning ` + rowCols
	return scanRow(r.q.QueryRow(ctx, sql, uuid.NewString(), orgID, name, color))
}

func (r *queries) Get(ctx context.Context, orgID, id string) (Row, error) {
	const sql = `select ` + rowCols + ` from tags where org_id = $1 and id = $2`
	return scanRow(r.q.QueryRow(ctx, sql, orgID, id))
}

func (r *queries) List(ctx context.Context, orgID string) ([]Row, error) {
	const sql = `select ` + rowCols + ` from tags where org_id = $1 order by name asc`
	rows, err := r.q.Query(ctx, sql, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Row
	for rows.Next() {
		rr, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Update(ctx context.Context, orgID, id string, name, color *string) (Row, error) {
	const sql = `
update tags set
name = coalesce($3, name),
color = coalesce($4, color)
where org_id = $1 and id = $2
returning ` + rowCols
	return scanRow(r.q.QueryRow(ctx, sql, orgID, id, pstrings.SQLNullPtr(name), pstrings.SQLNullPtr(color)))
}

func (r *queries) Delete(ctx context.Context, orgID, id string) (bool, error) {
	ct, err := r.q.Exec(ctx, `delete from tags where org_id = $1 and id = $2`, orgID, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
