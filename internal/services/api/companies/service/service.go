// Package service contains company workflows
package service

import (
	"context"
	stdsql "database/sql"
	"errors"
	"time"

	"funnel/internal/adapters/events"
	"funnel/internal/modkit/repokit"
	perr "funnel/internal/platform/errors"
	"funnel/internal/platform/logger"
	"funnel/internal/services/api/companies/domain"
	"funnel/internal/services/api/companies/repo"

	"github.com/jackc/pgx/v5"
)

const eventTopic = "crm.companies"

// Service defines the companies service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the companies service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	events events.Publisher
}

// New constructs a companies service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], pub events.Publisher) *Svc {
	if db == nil {
		panic("companies.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("companies.Service requires a non nil Repo binder")
	}
	if pub == nil {
		pub = events.NewProducer(nil, *logger.Get())
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, events: pub}
}

// Create inserts one company owned by the caller
func (s *Svc) Create(ctx context.Context, ident domain.Identity, in domain.CreateInput) (domain.Company, error) {
	row, err := s.Repo.Insert(ctx, repo.CreateParams{
		OrgID:    ident.OrgID,
		Name:     in.Name,
		Domain:   in.Domain,
		Industry: in.Industry,
		Size:     in.Size,
		OwnerID:  ident.UserID,
	})
	if err != nil {
		return domain.Company{}, perr.FromPostgres(err, "company create failed")
	}
	s.publish(ctx, ident, "created", row.ID)
	return toCompany(row), nil
}

// Get fetches one org company by id
func (s *Svc) Get(ctx context.Context, orgID, id string) (domain.Company, error) {
	row, err := s.Repo.Get(ctx, orgID, id)
	if err != nil {
		if noRows(err) {
			return domain.Company{}, perr.NotFoundf("company %s not found", id)
		}
		return domain.Company{}, perr.FromPostgres(err, "company get failed")
	}
	return toCompany(row), nil
}

// List pages org companies with an optional name or domain search
func (s *Svc) List(ctx context.Context, orgID string, in domain.ListInput) ([]domain.Company, int, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 {
		size = 50
	}
	rows, total, err := s.Repo.List(ctx, orgID, in.Search, size, (page-1)*size)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "company list failed")
	}
	out := make([]domain.Company, 0, len(rows))
	for _, r := range rows {
		out = append(out, toCompany(r))
	}
	return out, total, nil
}

// Update patches one company
func (s *Svc) Update(ctx context.Context, ident domain.Identity, id string, in domain.UpdateInput) (domain.Company, error) {
	row, err := s.Repo.Update(ctx, ident.OrgID, id, repo.UpdateParams{
		Name:     in.Name,
		Domain:   in.Domain,
		Industry: in.Industry,
		Size:     in.Size,
	})
	if err != nil {
		if noRows(err) {
			return domain.Company{}, perr.NotFoundf("company %s not found", id)
		}
		return domain.Company{}, perr.FromPostgres(err, "company update failed")
	}
	s.publish(ctx, ident, "updated", row.ID)
	return toCompany(row), nil
}

// Delete removes one company
func (s *Svc) Delete(ctx context.Context, ident domain.Identity, id string) error {
	ok, err := s.Repo.Delete(ctx, ident.OrgID, id)
	if err != nil {
		return perr.FromPostgres(err, "company delete failed")
	}
	if !ok {
		return perr.NotFoundf("company %s not found", id)
	}
	s.publish(ctx, ident, "deleted", id)
	return nil
}

func (s *Svc) publish(ctx context.Context, ident domain.Identity, action, id string) {
	s.events.Publish(ctx, eventTopic, events.Event{
		OrgID:      ident.OrgID,
		ActorID:    ident.UserID,
		Entity:     "company",
		EntityID:   id,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	})
}

func noRows(err error) bool {
	return errors.Is(err, stdsql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func toCompany(r repo.Row) domain.Company {
	return domain.Company{
		ID:        r.ID,
		Name:      r.Name,
		Domain:    r.Domain,
		Industry:  r.Industry,
		Size:      r.Size,
		OwnerID:   r.OwnerID,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
