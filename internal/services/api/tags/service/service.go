// Package service contains tag workflows
package service

import (
	"context"
	stdsql "database/sql"
	"errors"
	"time"

	"funnel/internal/modkit/repokit"
	perr "funnel/internal/platform/errors"
	"funnel/internal/services/api/tags/domain"
	"funnel/internal/services/api/tags/repo"

	"github.com/jackc/pgx/v5"
)

// Service defines the tags service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the tags service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a tags service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("tags.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("tags.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Create inserts one tag
func (s *Svc) Create(ctx context.Context, ident domain.Identity, in domain.CreateInput) (domain.Tag, error) {
	row, err := s.Repo.Insert(ctx, ident.OrgID, in.Name, in.Color)
	if err != nil {
		return domain.Tag{}, perr.FromPostgres(err, "tag create failed")
	}
	return toTag(row), nil
}

// Get fetches one org tag by id
func (s *Svc) Get(ctx context.Context, orgID, id string) (domain.Tag, error) {
	row, err := s.Repo.Get(ctx, orgID, id)
	if err != nil {
		if noRows(err) {
			return domain.Tag{}, perr.NotFoundf("tag %s not found", id)
		}
		return domain.Tag{}, perr.FromPostgres(err, "tag get failed")
	}
	return toTag(row), nil
}

// List returns all org tags sorted by name
func (s *Svc) List(ctx context.Context, orgID string) ([]domain.Tag, error) {
	rows, err := s.Repo.List(ctx, orgID)
	if err != nil {
		return nil, perr.FromPostgres(err, "tag list failed")
	}
	out := make([]domain.Tag, 0, len(rows))
	for _, r := range rows {
		out = append(out, toTag(r))
	}
	return out, nil
}

// Update patches one tag
func (s *Svc) Update(ctx context.Context, ident domain.Identity, id string, in domain.UpdateInput) (domain.Tag, error) {
	row, err := s.Repo.Update(ctx, ident.OrgID, id, in.Name, in.Color)
	if err != nil {
		if noRows(err) {
			return domain.Tag{}, perr.NotFoundf("tag %s not found", id)
		}
		return domain.Tag{}, perr.FromPostgres(err, "tag update failed")
	}
	return toTag(row), nil
}

// Delete removes one tag
func (s *Svc) Delete(ctx context.Context, ident domain.Identity, id string) error {
	ok, err := s.Repo.Delete(ctx, ident.OrgID, id)
	if err != nil {
		return perr.FromPostgres(err, "tag delete failed")
	}
	if !ok {
		return perr.NotFoundf("tag %s not found", id)
	}
	return nil
}

func noRows(err error) bool {
	return errors.Is(err, stdsql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func toTag(r repo.Row) domain.Tag {
	return domain.Tag{
		ID:        r.ID,
		Name:      r.Name,
		Color:     r.Color,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
