// Package service contains deal and pipeline workflows
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
	"funnel/internal/platform/store"
	"funnel/internal/services/api/deals/domain"
	"funnel/internal/services/api/deals/repo"

	"github.com/jackc/pgx/v5"
)

const eventTopic = "crm.deals"

// Service defines the deals service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the deals service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	events events.Publisher
}

// New constructs a deals service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], pub events.Publisher) *Svc {
	if db == nil {
		panic("deals.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("deals.Service requires a non nil Repo binder")
	}
	if pub == nil {
		pub = events.NewProducer(nil, *logger.Get())
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, events: pub}
}

// Create inserts one deal owned by the caller, status starts as open
func (s *Svc) Create(ctx context.Context, ident domain.Identity, in domain.CreateInput) (domain.Deal, error) {
	row, err := s.Repo.Insert(ctx, repo.CreateParams{
		OrgID:       ident.OrgID,
		Title:       in.Title,
		AmountCents: in.AmountCents,
		Currency:    in.Currency,
		PipelineID:  in.PipelineID,
		StageID:     in.StageID,
		ContactID:   in.ContactID,
		CompanyID:   in.CompanyID,
		OwnerID:     ident.UserID,
		CloseDate:   parseDayPtr(in.CloseDate),
	})
	if err != nil {
		return domain.Deal{}, perr.FromPostgres(err, "deal create failed")
	}
	s.publish(ctx, ident, "created", row.ID)
	return toDeal(row), nil
}

// Get fetches one org deal by id
func (s *Svc) Get(ctx context.Context, orgID, id string) (domain.Deal, error) {
	row, err := s.Repo.Get(ctx, orgID, id)
	if err != nil {
		if noRows(err) {
			return domain.Deal{}, perr.NotFoundf("deal %s not found", id)
		}
		return domain.Deal{}, perr.FromPostgres(err, "deal get failed")
	}
	return toDeal(row), nil
}

// List pages org deals newest first, optionally narrowed by pipeline or status
func (s *Svc) List(ctx context.Context, orgID string, in domain.ListInput) ([]domain.Deal, int, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 {
		size = 50
	}
	rows, total, err := s.Repo.List(ctx, orgID, repo.ListParams{
		PipelineID: in.PipelineID,
		Status:     in.Status,
		Limit:      size,
		Offset:     (page - 1) * size,
	})
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "deal list failed")
	}
	out := make([]domain.Deal, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDeal(r))
	}
	return out, total, nil
}

// Update patches one deal, stage moves and status transitions included
func (s *Svc) Update(ctx context.Context, ident domain.Identity, id string, in domain.UpdateInput) (domain.Deal, error) {
	row, err := s.Repo.Update(ctx, ident.OrgID, id, repo.UpdateParams{
		Title:       in.Title,
		AmountCents: in.AmountCents,
		StageID:     in.StageID,
		Status:      in.Status,
		CloseDate:   parseDayPtr(derefOr(in.CloseDate)),
	})
	if err != nil {
		if noRows(err) {
			return domain.Deal{}, perr.NotFoundf("deal %s not found", id)
		}
		return domain.Deal{}, perr.FromPostgres(err, "deal update failed")
	}
	s.publish(ctx, ident, "updated", row.ID)
	return toDeal(row), nil
}

// Delete removes one deal
func (s *Svc) Delete(ctx context.Context, ident domain.Identity, id string) error {
	ok, err := s.Repo.Delete(ctx, ident.OrgID, id)
	if err != nil {
		return perr.FromPostgres(err, "deal delete failed")
	}
	if !ok {
		return perr.NotFoundf("deal %s not found", id)
	}
	s.publish(ctx, ident, "deleted", id)
	return nil
}

// ListPipelines returns all org pipelines with their ordered stages embedded
func (s *Svc) ListPipelines(ctx context.Context, orgID string) ([]domain.Pipeline, error) {
	pipes, err := s.Repo.ListPipelines(ctx, orgID)
	if err != nil {
		return nil, perr.FromPostgres(err, "pipeline list failed")
	}
	ids := make([]string, 0, len(pipes))
	for _, p := range pipes {
		ids = append(ids, p.ID)
	}
	stages, err := s.Repo.ListStages(ctx, ids)
	if err != nil {
		return nil, perr.FromPostgres(err, "stage list failed")
	}

	byPipe := make(map[string][]domain.Stage, len(pipes))
	for _, st := range stages {
		byPipe[st.PipelineID] = append(byPipe[st.PipelineID], domain.Stage{
			ID:       st.ID,
			Name:     st.Name,
			Position: st.Position,
		})
	}

	out := make([]domain.Pipeline, 0, len(pipes))
	for _, p := range pipes {
		sts := byPipe[p.ID]
		if sts == nil {
			sts = []domain.Stage{}
		}
		out = append(out, domain.Pipeline{
			ID:        p.ID,
			Name:      p.Name,
			Stages:    sts,
			CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out, nil
}

// CreatePipeline inserts a pipeline and its stages atomically, stage order
// follows payload order starting at position 1
// the org id rides the context so traced queries inside the tx carry it
func (s *Svc) CreatePipeline(ctx context.Context, ident domain.Identity, in domain.CreatePipelineInput) (domain.Pipeline, error) {
	var out domain.Pipeline
	err := store.RunInOrg(ctx, s.db, ident.OrgID, func(ctx context.Context, q store.RowQuerier) error {
		txRepo := repokit.MustBind(s.binder, q)
		pipe, err := txRepo.InsertPipeline(ctx, ident.OrgID, in.Name)
		if err != nil {
			return err
		}
		out = domain.Pipeline{
			ID:        pipe.ID,
			Name:      pipe.Name,
			Stages:    make([]domain.Stage, 0, len(in.Stages)),
			CreatedAt: pipe.CreatedAt.UTC().Format(time.RFC3339),
		}
		for i, st := range in.Stages {
			row, err := txRepo.InsertStage(ctx, pipe.ID, st.Name, i+1)
			if err != nil {
				return err
			}
			out.Stages = append(out.Stages, domain.Stage{ID: row.ID, Name: row.Name, Position: row.Position})
		}
		return nil
	})
	if err != nil {
		return domain.Pipeline{}, perr.FromPostgres(err, "pipeline create failed")
	}
	s.publish(ctx, ident, "pipeline_created", out.ID)
	return out, nil
}

func (s *Svc) publish(ctx context.Context, ident domain.Identity, action, id string) {
	s.events.Publish(ctx, eventTopic, events.Event{
		OrgID:      ident.OrgID,
		ActorID:    ident.UserID,
		Entity:     "deal",
		EntityID:   id,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	})
}

func noRows(err error) bool {
	return errors.Is(err, stdsql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func toDeal(r repo.Row) domain.Deal {
	out := domain.Deal{
		ID:          r.ID,
		Title:       r.Title,
		AmountCents: r.AmountCents,
		Currency:    r.Currency,
		PipelineID:  r.PipelineID,
		StageID:     r.StageID,
		ContactID:   r.ContactID,
		CompanyID:   r.CompanyID,
		Status:      r.Status,
		OwnerID:     r.OwnerID,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if r.CloseDate != nil {
		out.CloseDate = r.CloseDate.UTC().Format("2006-01-02")
	}
	return out
}

func derefOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// parseDayPtr parses an ISO day, empty or invalid yields nil
func parseDayPtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	u := t.UTC()
	return &u
}
