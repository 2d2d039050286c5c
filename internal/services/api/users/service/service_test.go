package service

import (
	"context"
	stdsql "database/sql"
	"testing"

	"funnel/internal/modkit/repokit"
	perr "funnel/internal/platform/errors"
	"funnel/internal/platform/store"
	"funnel/internal/services/api/users/domain"
	"funnel/internal/services/api/users/repo"
)

type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	var z store.CommandTag
	return z, nil
}
func (fakeTx) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) store.Row        { return nil }
func (fakeTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(fakeTx{})
}

type fakeRepo struct {
	repo.Repo

	rows []repo.Row
}

func (f *fakeRepo) ByIDs(_ context.Context, ids []string) ([]repo.Row, error) {
	return f.rows, nil
}

func (f *fakeRepo) Get(_ context.Context, orgID, id string) (repo.Row, error) {
	for _, r := range f.rows {
		if r.OrgID == orgID && r.ID == id {
			return r, nil
		}
	}
	return repo.Row{}, stdsql.ErrNoRows
}

func newTestSvc(fr *fakeRepo) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return fr })
	return New(fakeTx{}, binder)
}

func TestLookup_CrossOrgRowsAreDropped(t *testing.T) {
	t.Parallel()

	svc := newTestSvc(&fakeRepo{rows: []repo.Row{
		{ID: "u1", OrgID: "org-1", Name: "ada lovelace", Email: "ada@acme.test"},
		{ID: "u2", OrgID: "org-2", Name: "mallory", Email: "mallory@evil.test"},
	}})

	out, err := svc.Lookup(context.Background(), "org-1", domain.LookupInput{IDs: []string{"u1", "u2"}})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("lookup size = %d, want 1", len(out))
	}
	if _, leaked := out["u2"]; leaked {
		t.Fatal("cross-org row leaked into lookup result")
	}
}

func TestLookup_NoOrgSkipsTenantCheck(t *testing.T) {
	t.Parallel()

	svc := newTestSvc(&fakeRepo{rows: []repo.Row{
		{ID: "u1", OrgID: "org-1", Name: "ada", Email: "ada@acme.test"},
		{ID: "u2", OrgID: "org-2", Name: "bob", Email: "bob@other.test"},
	}})

	out, err := svc.Lookup(context.Background(), "", domain.LookupInput{IDs: []string{"u1", "u2"}})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("lookup size = %d, want 2", len(out))
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	svc := newTestSvc(&fakeRepo{})

	cases := []struct {
		name  string
		email string
		want  string
	}{
		{"ada lovelace", "", "Ada Lovelace"},
		{"  grace   hopper  ", "", "Grace Hopper"},
		{"", "alan.kay@acme.test", "Alan.Kay"},
		{"", "@broken", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		if got := svc.displayName(tc.name, tc.email); got != tc.want {
			t.Errorf("displayName(%q, %q) = %q, want %q", tc.name, tc.email, got, tc.want)
		}
	}
}

func TestGet_MissingUserIsNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestSvc(&fakeRepo{})

	_, err := svc.Get(context.Background(), "org-1", "nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if perr.HTTPStatus(err) != 404 {
		t.Fatalf("status = %d, want 404", perr.HTTPStatus(err))
	}
}
