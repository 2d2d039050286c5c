// Package service contains lead workflows
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
	"funnel/internal/services/api/leads/domain"
	"funnel/internal/services/api/leads/repo"

	"github.com/jackc/pgx/v5"
)

const eventTopic = "crm.leads"

// Service defines the leads service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the leads service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	events events.Publisher
}

// New constructs a leads service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], pub events.Publisher) *Svc {
	if db == nil {
		panic("leads.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("leads.Service requires a non nil Repo binder")
	}
	if pub == nil {
		pub = events.NewProducer(nil, *logger.Get())
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, events: pub}
}

// Create inserts one lead owned by the caller, status starts as new
func (s *Svc) Create(ctx context.Context, ident domain.Identity, in domain.CreateInput) (domain.Lead, error) {
	row, err := s.Repo.Insert(ctx, repo.CreateParams{
		OrgID:   ident.OrgID,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Source:  in.Source,
		OwnerID: ident.UserID,
	})
	if err != nil {
		return domain.Lead{}, perr.FromPostgres(err, "lead create failed")
	}
	s.publish(ctx, ident, "created", row.ID)
	return toLead(row), nil
}

// Get fetches one org lead by id
func (s *Svc) Get(ctx context.Context, orgID, id string) (domain.Lead, error) {
	row, err := s.Repo.Get(ctx, orgID, id)
	if err != nil {
		if noRows(err) {
			return domain.Lead{}, perr.NotFoundf("lead %s not found", id)
		}
		return domain.Lead{}, perr.FromPostgres(err, "lead get failed")
	}
	return toLead(row), nil
}

// List pages org leads newest first, optionally filtered by status
func (s *Svc) List(ctx context.Context, orgID string, in domain.ListInput) ([]domain.Lead, int, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 {
		size = 50
	}
	rows, total, err := s.Repo.List(ctx, orgID, in.Status, size, (page-1)*size)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "lead list failed")
	}
	out := make([]domain.Lead, 0, len(rows))
	for _, r := range rows {
		out = append(out, toLead(r))
	}
	return out, total, nil
}

// Update patches one lead, status transitions included
func (s *Svc) Update(ctx context.Context, ident domain.Identity, id string, in domain.UpdateInput) (domain.Lead, error) {
	row, err := s.Repo.Update(ctx, ident.OrgID, id, repo.UpdateParams{
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Source: in.Source,
		Status: in.Status,
	})
	if err != nil {
		if noRows(err) {
			return domain.Lead{}, perr.NotFoundf("lead %s not found", id)
		}
		return domain.Lead{}, perr.FromPostgres(err, "lead update failed")
	}
	s.publish(ctx, ident, "updated", row.ID)
	return toLead(row), nil
}

// Delete removes one lead
func (s *Svc) Delete(ctx context.Context, ident domain.Identity, id string) error {
	ok, err := s.Repo.Delete(ctx, ident.OrgID, id)
	if err != nil {
		return perr.FromPostgres(err, "lead delete failed")
	}
	if !ok {
		return perr.NotFoundf("lead %s not found", id)
	}
	s.publish(ctx, ident, "deleted", id)
	return nil
}

func (s *Svc) publish(ctx context.Context, ident domain.Identity, action, id string) {
	s.events.Publish(ctx, eventTopic, events.Event{
		OrgID:      ident.OrgID,
		ActorID:    ident.UserID,
		Entity:     "lead",
		EntityID:   id,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	})
}

func noRows(err error) bool {
	return errors.Is(err, stdsql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func toLead(r repo.Row) domain.Lead {
	return domain.Lead{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Source:    r.Source,
		Status:    r.Status,
		OwnerID:   r.OwnerID,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
