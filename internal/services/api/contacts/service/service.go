// Package service contains contact workflows
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
	"funnel/internal/services/api/contacts/domain"
	"funnel/internal/services/api/contacts/repo"

	"github.com/jackc/pgx/v5"
)

const eventTopic = "crm.contacts"

// Service defines the contacts service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the contacts service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	events events.Publisher
}

// New constructs a contacts service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], pub events.Publisher) *Svc {
	if db == nil {
		panic("contacts.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("contacts.Service requires a non nil Repo binder")
	}
	if pub == nil {
		pub = events.NewProducer(nil, *logger.Get())
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, events: pub}
}

// Create inserts one contact owned by the caller
func (s *Svc) Create(ctx context.Context, ident domain.Identity, in domain.CreateInput) (domain.Contact, error) {
	row, err := s.Repo.Insert(ctx, repo.CreateParams{
		OrgID:     ident.OrgID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Title:     in.Title,
		CompanyID: in.CompanyID,
		OwnerID:   ident.UserID,
	})
	if err != nil {
		return domain.Contact{}, perr.FromPostgres(err, "contact create failed")
	}
	s.publish(ctx, ident, "created", row.ID)
	return toContact(row), nil
}

// Get fetches one org contact by id
func (s *Svc) Get(ctx context.Context, orgID, id string) (domain.Contact, error) {
	row, err := s.Repo.Get(ctx, orgID, id)
	if err != nil {
		if noRows(err) {
			return domain.Contact{}, perr.NotFoundf("contact %s not found", id)
		}
		return domain.Contact{}, perr.FromPostgres(err, "contact get failed")
	}
	return toContact(row), nil
}

// List pages org contacts with an optional name or email search
func (s *Svc) List(ctx context.Context, orgID string, in domain.ListInput) ([]domain.Contact, int, error) {
	page, size := pageOf(in.Page, in.PageSize)
	rows, total, err := s.Repo.List(ctx, orgID, in.Search, size, (page-1)*size)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "contact list failed")
	}
	out := make([]domain.Contact, 0, len(rows))
	for _, r := range rows {
		out = append(out, toContact(r))
	}
	return out, total, nil
}

// Update patches one contact
func (s *Svc) Update(ctx context.Context, ident domain.Identity, id string, in domain.UpdateInput) (domain.Contact, error) {
	row, err := s.Repo.Update(ctx, ident.OrgID, id, repo.UpdateParams{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Title:     in.Title,
		CompanyID: in.CompanyID,
	})
	if err != nil {
		if noRows(err) {
			return domain.Contact{}, perr.NotFoundf("contact %s not found", id)
		}
		return domain.Contact{}, perr.FromPostgres(err, "contact update failed")
	}
	s.publish(ctx, ident, "updated", row.ID)
	return toContact(row), nil
}

// Delete removes one contact
func (s *Svc) Delete(ctx context.Context, ident domain.Identity, id string) error {
	ok, err := s.Repo.Delete(ctx, ident.OrgID, id)
	if err != nil {
		return perr.FromPostgres(err, "contact delete failed")
	}
	if !ok {
		return perr.NotFoundf("contact %s not found", id)
	}
	s.publish(ctx, ident, "deleted", id)
	return nil
}

func (s *Svc) publish(ctx context.Context, ident domain.Identity, action, id string) {
	s.events.Publish(ctx, eventTopic, events.Event{
		OrgID:      ident.OrgID,
		ActorID:    ident.UserID,
		Entity:     "contact",
		EntityID:   id,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	})
}

func pageOf(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 50
	}
	return page, size
}

func noRows(err error) bool {
	return errors.Is(err, stdsql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func toContact(r repo.Row) domain.Contact {
	return domain.Contact{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Title:     r.Title,
		CompanyID: r.CompanyID,
		OwnerID:   r.OwnerID,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
