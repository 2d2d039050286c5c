// Package service contains user directory workflows
package service

import (
	"context"
	stdsql "database/sql"
	"errors"
	"strings"

	"funnel/internal/modkit/repokit"
	perr "funnel/internal/platform/errors"
	"funnel/internal/services/api/users/domain"
	"funnel/internal/services/api/users/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Service defines the users service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the users service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	caser cases.Caser
}

// New constructs a users service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		caser:  cases.Title(language.Und),
	}
}

// Lookup batch-resolves ids to display profiles, ids outside the caller's
// org are silently absent from the result
func (s *Svc) Lookup(ctx context.Context, orgID string, in domain.LookupInput) (map[string]domain.Profile, error) {
	rows, err := s.Repo.ByIDs(ctx, in.IDs)
	if err != nil {
		return nil, perr.FromPostgres(err, "users lookup failed")
	}
	out := make(map[string]domain.Profile, len(rows))
	for _, r := range rows {
		if orgID != "" && r.OrgID != orgID {
			continue
		}
		out[r.ID] = domain.Profile{
			Name:      s.displayName(r.Name, r.Email),
			AvatarURL: r.AvatarURL,
		}
	}
	return out, nil
}

// List pages the org directory
func (s *Svc) List(ctx context.Context, orgID string, in domain.ListInput) ([]domain.User, int, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 {
		size = 50
	}
	rows, total, err := s.Repo.List(ctx, orgID, size, (page-1)*size)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "users list failed")
	}
	out := make([]domain.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.toUser(r))
	}
	return out, total, nil
}

// Get fetches one org member by id
func (s *Svc) Get(ctx context.Context, orgID, id string) (domain.User, error) {
	r, err := s.Repo.Get(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, perr.NotFoundf("user %s not found", id)
		}
		return domain.User{}, perr.FromPostgres(err, "user get failed")
	}
	return s.toUser(r), nil
}

func (s *Svc) toUser(r repo.Row) domain.User {
	return domain.User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      s.displayName(r.Name, r.Email),
		AvatarURL: r.AvatarURL,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
	}
}

// displayName collapses whitespace and title-cases the stored name,
// falling back to the email local part when the name is blank
func (s *Svc) displayName(name, email string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			name = email[:at]
		}
	}
	if name == "" {
		return ""
	}
	return s.caser.String(name)
}
