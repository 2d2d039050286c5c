// Package repo provides postgres access for the user directory
package repo

import (
	"context"

	"funnel/internal/modkit/repokit"
)

// Row is one directory row as stored
type Row struct {
	ID        string
	OrgID     string
	Email     string
	Name      string
	AvatarURL string
	Role      string
	CreatedAt string
}

// Repo is the minimal persistence surface for users
type Repo interface {
	ByIDs(ctx context.Context, ids []string) ([]Row, error)
	List(ctx context.Context, orgID string, limit, offset int) ([]Row, int, error)
	Get(ctx context.Context, orgID, id string) (Row, error)
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

func (r *queries) ByIDs(ctx context.Context, ids []string) ([]Row, error) {
	const sql = `
select id::text, org_id::text, email, name, coalesce(avatar_url, ''), role, created_at::text
from users
where id = any($1)
`
	rows, err := r.q.Query(ctx, sql, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Row
	for rows.Next() {
		var rr Row
		if err := rows.Scan(&rr.ID, &rr.OrgID, &rr.Email, &rr.Name, &rr.AvatarURL, &rr.Role, &rr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) List(ctx context.Context, orgID string, limit, offset int) ([]Row, int, error) {
	const sql = `
select id::text, org_id::text, email, name, coalesce(avatar_url, ''), role, created_at::text
from users
where org_id = $1
order by name asc, id asc
limit $2 offset $3
`
	rows, err := r.q.Query(ctx, sql, orgID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var out []Row
	for rows.Next() {
		var rr Row
		if err := rows.Scan(&rr.ID, &rr.OrgID, &rr.Email, &rr.Name, &rr.AvatarURL, &rr.Role, &rr.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.q.QueryRow(ctx, `select count(1) from users where org_id = $1`, orgID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *queries) Get(ctx context.Context, orgID, id string) (Row, error) {
	const sql = `
select id::text, org_id::text, email, name, coalesce(avatar_url, ''), role, created_at::text
from users
where org_id = $1 and id = $2
`
	var rr Row
	err := r.q.QueryRow(ctx, sql, orgID, id).Scan(
		&rr.ID, &rr.OrgID, &rr.Email, &rr.Name, &rr.AvatarURL, &rr.Role, &rr.CreatedAt,
	)
	return rr, err
}
