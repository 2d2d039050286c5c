package analytics

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

type fakeFetcher struct {
	records []Record
	err     error

	calls   int
	lastOrg string
	lastF   Filter
}

func (f *fakeFetcher) FetchActivities(_ context.Context, orgID string, flt Filter) ([]Record, error) {
	f.calls++
	f.lastOrg = orgID
	f.lastF = flt
	return f.records, f.err
}

type fakeDirectory struct {
	users map[string]UserInfo
	err   error

	calls   int
	lastOrg string
	lastIDs []string
}

func (d *fakeDirectory) ResolveUsersByIDs(_ context.Context, orgID string, ids []string) (map[string]UserInfo, error) {
	d.calls++
	d.lastOrg = orgID
	d.lastIDs = append([]string(nil), ids...)
	return d.users, d.err
}

func fixedNow() time.Time {
	return time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC)
}

func TestEngineRun_HappyPath(t *testing.T) {
	t.Parallel()

	fetch := &fakeFetcher{records: []Record{
		rec(TypeCall, "A", "2025-01-01T09:00:00Z"),
		rec(TypeCall, "A", "2025-01-01T10:00:00Z"),
		rec(TypeEmail, "A", "2025-01-01T11:00:00Z"),
		rec(TypeMeeting, "B", "2025-01-02T08:00:00Z"),
	}}
	dir := &fakeDirectory{users: map[string]UserInfo{
		"A": {Name: "Ada Lovelace", AvatarURL: "https://cdn.example/a.png"},
	}}
	eng := NewEngine(fetch, dir, fixedNow)

	from, to := day("2025-01-01"), day("2025-01-02")
	resp, err := eng.Run(context.Background(), Query{
		OrgID:    "org-1",
		CallerID: "A",
		Role:     RoleAdmin,
		From:     &from,
		To:       &to,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if fetch.lastOrg != "org-1" {
		t.Fatalf("fetch org = %q", fetch.lastOrg)
	}
	if fetch.lastF.Authors.Kind != ScopeAll {
		t.Fatalf("fetch scope = %+v, want all", fetch.lastF.Authors)
	}
	if resp.KPIs.TotalActivities != 4 || resp.KPIs.ActiveUsers != 2 {
		t.Fatalf("kpis = %+v", resp.KPIs)
	}

	// directory called once, org-scoped, with the ranked author set
	if dir.calls != 1 {
		t.Fatalf("directory calls = %d, want 1", dir.calls)
	}
	if dir.lastOrg != "org-1" {
		t.Fatalf("directory org = %q, want org-1", dir.lastOrg)
	}
	if !reflect.DeepEqual(dir.lastIDs, []string{"A", "B"}) {
		t.Fatalf("directory ids = %v", dir.lastIDs)
	}

	want := []Contributor{
		{UserID: "A", Name: "Ada Lovelace", AvatarURL: "https://cdn.example/a.png", Count: 3},
		{UserID: "B", Name: "Unknown", Count: 1},
	}
	if !reflect.DeepEqual(resp.TopContributors, want) {
		t.Fatalf("contributors = %+v, want %+v", resp.TopContributors, want)
	}
}

func TestEngineRun_NoAccessShortCircuits(t *testing.T) {
	t.Parallel()

	fetch := &fakeFetcher{}
	dir := &fakeDirectory{}
	eng := NewEngine(fetch, dir, fixedNow)

	from, to := day("2025-01-01"), day("2025-01-07")
	resp, err := eng.Run(context.Background(), Query{
		OrgID:    "org-1",
		CallerID: "me",
		Role:     RoleUser,
		From:     &from,
		To:       &to,
		Users:    []string{"someone-else"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// never hits storage or the directory
	if fetch.calls != 0 {
		t.Fatalf("fetch calls = %d, want 0", fetch.calls)
	}
	if dir.calls != 0 {
		t.Fatalf("directory calls = %d, want 0", dir.calls)
	}

	// response is still range-complete
	if resp.KPIs.TotalActivities != 0 {
		t.Fatalf("total = %d, want 0", resp.KPIs.TotalActivities)
	}
	if len(resp.ByDay) != 7 {
		t.Fatalf("byDay len = %d, want 7", len(resp.ByDay))
	}
	if len(resp.Mix) != 5 {
		t.Fatalf("mix len = %d, want 5", len(resp.Mix))
	}
	if len(resp.TopContributors) != 0 {
		t.Fatalf("contributors = %+v, want empty", resp.TopContributors)
	}
}

func TestEngineRun_SelfScopeNarrowsFilter(t *testing.T) {
	t.Parallel()

	fetch := &fakeFetcher{}
	eng := NewEngine(fetch, &fakeDirectory{}, fixedNow)

	from, to := day("2025-01-01"), day("2025-01-02")
	_, err := eng.Run(context.Background(), Query{
		OrgID:    "org-1",
		CallerID: "me",
		Role:     RoleUser,
		From:     &from,
		To:       &to,
		Users:    []string{"me", "someone-else"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := AuthorScope{Kind: ScopeSet, IDs: []string{"me"}}
	if !reflect.DeepEqual(fetch.lastF.Authors, want) {
		t.Fatalf("fetch scope = %+v, want %+v", fetch.lastF.Authors, want)
	}
}

func TestEngineRun_DefaultRangeUsesInjectedNow(t *testing.T) {
	t.Parallel()

	fetch := &fakeFetcher{}
	eng := NewEngine(fetch, &fakeDirectory{}, fixedNow)

	resp, err := eng.Run(context.Background(), Query{
		OrgID:    "org-1",
		CallerID: "me",
		Role:     RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := FormatDateKey(fetch.lastF.Range.End); got != "2025-01-10" {
		t.Fatalf("range end = %s, want 2025-01-10", got)
	}
	if got := FormatDateKey(fetch.lastF.Range.Start); got != "2024-12-12" {
		t.Fatalf("range start = %s, want 2024-12-12", got)
	}
	if len(resp.ByDay) != 30 {
		t.Fatalf("byDay len = %d, want 30", len(resp.ByDay))
	}
}

func TestEngineRun_FetchErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("pg down")
	fetch := &fakeFetcher{err: boom}
	dir := &fakeDirectory{}
	eng := NewEngine(fetch, dir, fixedNow)

	_, err := eng.Run(context.Background(), Query{OrgID: "org-1", CallerID: "me", Role: RoleAdmin})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if dir.calls != 0 {
		t.Fatalf("directory called after fetch failure")
	}
}

func TestEngineRun_DirectoryErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("directory down")
	fetch := &fakeFetcher{records: []Record{rec(TypeCall, "A", "2025-01-05T00:00:00Z")}}
	dir := &fakeDirectory{err: boom}
	eng := NewEngine(fetch, dir, fixedNow)

	_, err := eng.Run(context.Background(), Query{OrgID: "org-1", CallerID: "me", Role: RoleAdmin})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestEngineRun_EmptyFetchSkipsDirectory(t *testing.T) {
	t.Parallel()

	fetch := &fakeFetcher{}
	dir := &fakeDirectory{}
	eng := NewEngine(fetch, dir, fixedNow)

	resp, err := eng.Run(context.Background(), Query{OrgID: "org-1", CallerID: "me", Role: RoleAdmin})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if dir.calls != 0 {
		t.Fatalf("directory calls = %d, want 0", dir.calls)
	}
	if len(resp.TopContributors) != 0 {
		t.Fatalf("contributors = %+v, want empty", resp.TopContributors)
	}
}
