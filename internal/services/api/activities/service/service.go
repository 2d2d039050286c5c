// Package service contains activity workflows and the analytics entrypoint
package service

import (
	"context"
	stdsql "database/sql"
	"errors"
	"time"

	"funnel/internal/adapters/events"
	"funnel/internal/core/analytics"
	"funnel/internal/modkit/repokit"
	perr "funnel/internal/platform/errors"
	"funnel/internal/platform/logger"
	pstrings "funnel/internal/platform/strings"
	"funnel/internal/services/api/activities/domain"
	"funnel/internal/services/api/activities/repo"
	usersdomain "funnel/internal/services/api/users/domain"

	"github.com/jackc/pgx/v5"
)

// eventTopic receives activity change events
const eventTopic = "crm.activities"

// Service defines the activities service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the activities service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	engine *analytics.Engine
	events events.Publisher
}

// New constructs an activities service
// users resolves contributor names, pub may be a nop publisher, nowFn nil means wall clock
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	users usersdomain.ServicePort,
	pub events.Publisher,
	nowFn func() time.Time,
) *Svc {
	if db == nil {
		panic("activities.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("activities.Service requires a non nil Repo binder")
	}
	if pub == nil {
		pub = events.NewProducer(nil, *logger.Get())
	}

	bound := binder.Bind(db)
	s := &Svc{
		Repo:   bound,
		binder: binder,
		db:     db,
		events: pub,
	}
	s.engine = analytics.NewEngine(fetchAdapter{repo: bound}, directoryAdapter{users: users}, nowFn)
	return s
}

// Create inserts one activity authored by the caller and emits an event
func (s *Svc) Create(ctx context.Context, ident domain.Identity, in domain.CreateInput) (domain.Activity, error) {
	row, err := s.Repo.Insert(ctx, repo.CreateParams{
		OrgID:     ident.OrgID,
		Type:      in.Type,
		Subject:   in.Subject,
		Body:      in.Body,
		AuthorID:  ident.UserID,
		ContactID: in.ContactID,
		DealID:    in.DealID,
		DueAt:     parseTimePtr(in.DueAt),
	})
	if err != nil {
		return domain.Activity{}, perr.FromPostgres(err, "activity create failed")
	}
	s.publish(ctx, ident, "created", row.ID)
	return toActivity(row), nil
}

// Get fetches one org activity by id
func (s *Svc) Get(ctx context.Context, orgID, id string) (domain.Activity, error) {
	row, err := s.Repo.Get(ctx, orgID, id)
	if err != nil {
		if noRows(err) {
			return domain.Activity{}, perr.NotFoundf("activity %s not found", id)
		}
		return domain.Activity{}, perr.FromPostgres(err, "activity get failed")
	}
	return toActivity(row), nil
}

// List pages org activities newest first
func (s *Svc) List(ctx context.Context, orgID string, in domain.ListInput) ([]domain.Activity, int, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 {
		size = 50
	}
	rows, total, err := s.Repo.List(ctx, orgID, in.Types, size, (page-1)*size)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "activity list failed")
	}
	out := make([]domain.Activity, 0, len(rows))
	for _, r := range rows {
		out = append(out, toActivity(r))
	}
	return out, total, nil
}

// Update patches one activity and emits an event
func (s *Svc) Update(ctx context.Context, ident domain.Identity, id string, in domain.UpdateInput) (domain.Activity, error) {
	row, err := s.Repo.Update(ctx, ident.OrgID, id, repo.UpdateParams{
		Subject:     in.Subject,
		Body:        in.Body,
		DueAt:       parseTimePtr(pstrings.Deref(in.DueAt)),
		CompletedAt: parseTimePtr(pstrings.Deref(in.CompletedAt)),
	})
	if err != nil {
		if noRows(err) {
			return domain.Activity{}, perr.NotFoundf("activity %s not found", id)
		}
		return domain.Activity{}, perr.FromPostgres(err, "activity update failed")
	}
	s.publish(ctx, ident, "updated", row.ID)
	return toActivity(row), nil
}

// Delete removes one activity and emits an event
func (s *Svc) Delete(ctx context.Context, ident domain.Identity, id string) error {
	ok, err := s.Repo.Delete(ctx, ident.OrgID, id)
	if err != nil {
		return perr.FromPostgres(err, "activity delete failed")
	}
	if !ok {
		return perr.NotFoundf("activity %s not found", id)
	}
	s.publish(ctx, ident, "deleted", id)
	return nil
}

// Analytics runs the aggregation engine for the caller
// unparseable date strings fall back to the default window rather than failing
func (s *Svc) Analytics(ctx context.Context, ident domain.Identity, in domain.AnalyticsInput) (*analytics.Response, error) {
	types := make([]analytics.ActivityType, 0, len(in.Types))
	for _, t := range in.Types {
		types = append(types, analytics.ActivityType(t))
	}

	return s.engine.Run(ctx, analytics.Query{
		OrgID:    ident.OrgID,
		CallerID: ident.UserID,
		Role:     analytics.ParseRole(ident.Role),
		From:     parseDayPtr(ctx, in.From),
		To:       parseDayPtr(ctx, in.To),
		Users:    in.Users,
		Types:    types,
	})
}

func (s *Svc) publish(ctx context.Context, ident domain.Identity, action, id string) {
	s.events.Publish(ctx, eventTopic, events.Event{
		OrgID:      ident.OrgID,
		ActorID:    ident.UserID,
		Entity:     "activity",
		EntityID:   id,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	})
}

// fetchAdapter binds the repo to the engine's fetch port
type fetchAdapter struct{ repo repo.Repo }

func (a fetchAdapter) FetchActivities(ctx context.Context, orgID string, f analytics.Filter) ([]analytics.Record, error) {
	return a.repo.FetchRange(ctx, orgID, f)
}

// directoryAdapter bridges the user directory into the engine's name lookup
// the org id is threaded through so lookup keeps dropping cross-org rows
type directoryAdapter struct{ users usersdomain.ServicePort }

func (a directoryAdapter) ResolveUsersByIDs(ctx context.Context, orgID string, ids []string) (map[string]analytics.UserInfo, error) {
	if a.users == nil || len(ids) == 0 {
		return nil, nil
	}
	profiles, err := a.users.Lookup(ctx, orgID, usersdomain.LookupInput{IDs: ids})
	if err != nil {
		return nil, err
	}
	out := make(map[string]analytics.UserInfo, len(profiles))
	for id, p := range profiles {
		out[id] = analytics.UserInfo{Name: p.Name, AvatarURL: p.AvatarURL}
	}
	return out, nil
}

func noRows(err error) bool {
	return errors.Is(err, stdsql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func toActivity(r repo.Row) domain.Activity {
	out := domain.Activity{
		ID:        r.ID,
		Type:      r.Type,
		Subject:   r.Subject,
		Body:      r.Body,
		AuthorID:  r.AuthorID,
		ContactID: r.ContactID,
		DealID:    r.DealID,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.DueAt != nil {
		out.DueAt = r.DueAt.UTC().Format(time.RFC3339)
	}
	if r.CompletedAt != nil {
		out.CompletedAt = r.CompletedAt.UTC().Format(time.RFC3339)
	}
	return out
}

// parseTimePtr parses RFC3339, empty or invalid yields nil
func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// parseDayPtr parses an ISO day, invalid input logs and falls back to nil
// so the engine applies its default window instead of erroring
func parseDayPtr(ctx context.Context, s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := analytics.ParseDateOnly(s)
	if err != nil {
		logger.C(ctx).Warn().Str("date", s).Msg("unparseable analytics bound, using default window")
		return nil
	}
	return &t
}
