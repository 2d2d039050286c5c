//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"funnel/internal/core/analytics"
	"funnel/internal/platform/store"

	"github.com/rs/zerolog"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const schema = `
create table activities (
	id           uuid primary key,
	org_id       uuid not null,
	type         text not null,
	subject      text not null,
	body         text,
	author_id    uuid not null,
	contact_id   uuid,
	deal_id      uuid,
	created_at   timestamptz not null default now(),
	due_at       timestamptz,
	completed_at timestamptz
)
`

func openTestDB(t *testing.T) store.TxRunner {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Terminate(context.Background())
		cancel()
	})

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mp.Port())
	st, err := store.Open(ctx, store.Config{
		PG: store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	}, store.WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	if _, err := st.PG.Exec(ctx, schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return st.PG
}

const (
	orgA    = "11111111-1111-4111-8111-111111111111"
	orgB    = "22222222-2222-4222-8222-222222222222"
	userAda = "33333333-3333-4333-8333-333333333333"
	userBob = "44444444-4444-4444-8444-444444444444"
)

func seed(t *testing.T, r Repo, orgID, authorID, typ string, created time.Time) Row {
	t.Helper()
	row, err := r.Insert(context.Background(), CreateParams{
		OrgID:    orgID,
		Type:     typ,
		Subject:  "seeded " + typ,
		AuthorID: authorID,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	// Insert stamps now(); pin created_at for deterministic windows
	_, err = r.(*queries).q.Exec(context.Background(),
		`update activities set created_at = $2 where id = $1`, row.ID, created)
	if err != nil {
		t.Fatalf("pin created_at: %v", err)
	}
	row.CreatedAt = created
	return row
}

func TestRepo_Integration_CRUDRoundTrip(t *testing.T) {
	db := openTestDB(t)
	r := NewPG().Bind(db)
	ctx := context.Background()

	row, err := r.Insert(ctx, CreateParams{
		OrgID:    orgA,
		Type:     "call",
		Subject:  "intro call",
		Body:     "notes",
		AuthorID: userAda,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if row.ID == "" || row.Type != "call" || row.Body != "notes" {
		t.Fatalf("unexpected row: %+v", row)
	}

	got, err := r.Get(ctx, orgA, row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Subject != "intro call" {
		t.Fatalf("get subject = %q", got.Subject)
	}

	// cross-org get misses
	if _, err := r.Get(ctx, orgB, row.ID); err == nil {
		t.Fatal("cross-org get should fail")
	}

	subj := "intro call (rescheduled)"
	done := time.Now().UTC().Truncate(time.Second)
	upd, err := r.Update(ctx, orgA, row.ID, UpdateParams{Subject: &subj, CompletedAt: &done})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Subject != subj || upd.CompletedAt == nil {
		t.Fatalf("update row: %+v", upd)
	}

	ok, err := r.Delete(ctx, orgA, row.ID)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	ok, err = r.Delete(ctx, orgA, row.ID)
	if err != nil || ok {
		t.Fatalf("second delete: ok=%v err=%v", ok, err)
	}
}

func TestRepo_Integration_FetchRangeFilters(t *testing.T) {
	db := openTestDB(t)
	r := NewPG().Bind(db)
	ctx := context.Background()

	day := func(d int, hour int) time.Time {
		return time.Date(2025, 3, d, hour, 0, 0, 0, time.UTC)
	}

	seed(t, r, orgA, userAda, "call", day(1, 9))
	seed(t, r, orgA, userAda, "email", day(2, 10))
	seed(t, r, orgA, userBob, "call", day(2, 23))
	seed(t, r, orgA, userBob, "task", day(5, 0)) // outside window
	seed(t, r, orgB, userAda, "call", day(2, 12)) // other tenant

	rng := analytics.Range{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
	}

	// whole org, whole window
	recs, err := r.FetchRange(ctx, orgA, analytics.Filter{
		Range:   rng,
		Authors: analytics.AuthorScope{Kind: analytics.ScopeAll},
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("org window fetch = %d records, want 3", len(recs))
	}

	// type filter
	recs, err = r.FetchRange(ctx, orgA, analytics.Filter{
		Range:   rng,
		Types:   []analytics.ActivityType{analytics.TypeCall},
		Authors: analytics.AuthorScope{Kind: analytics.ScopeAll},
	})
	if err != nil {
		t.Fatalf("fetch typed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("call fetch = %d records, want 2", len(recs))
	}

	// author set narrows to one user
	recs, err = r.FetchRange(ctx, orgA, analytics.Filter{
		Range:   rng,
		Authors: analytics.AuthorScope{Kind: analytics.ScopeSet, IDs: []string{userBob}},
	})
	if err != nil {
		t.Fatalf("fetch scoped: %v", err)
	}
	if len(recs) != 1 || recs[0].AuthorID != userBob {
		t.Fatalf("scoped fetch = %+v", recs)
	}

	// inclusive end day: 23:00 on the end day is inside
	rng2 := analytics.Range{Start: day(2, 0), End: day(2, 0)}
	recs, err = r.FetchRange(ctx, orgA, analytics.Filter{
		Range:   rng2,
		Authors: analytics.AuthorScope{Kind: analytics.ScopeAll},
	})
	if err != nil {
		t.Fatalf("fetch single day: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("single day fetch = %d records, want 2", len(recs))
	}
}
