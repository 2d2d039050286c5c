package analytics

import (
	"context"
	"time"
)

// fallbackName is used for contributor ids the directory cannot resolve
const fallbackName = "Unknown"

// Fetcher returns raw activity records for an org constrained by a filter
// the engine never assumes any ordering of the returned slice
type Fetcher interface {
	FetchActivities(ctx context.Context, orgID string, f Filter) ([]Record, error)
}

// UserInfo is the directory projection needed to label contributors
type UserInfo struct {
	Name      string
	AvatarURL string
}

// Directory batch-resolves user ids to display info within one org
// ids absent from the returned map are treated as unresolved
type Directory interface {
	ResolveUsersByIDs(ctx context.Context, orgID string, ids []string) (map[string]UserInfo, error)
}

// Query is one analytics request after transport-level validation
type Query struct {
	OrgID    string
	CallerID string
	Role     Role

	// optional inclusive day bounds, nil means default window
	From *time.Time
	To   *time.Time

	// optional author and type restrictions
	Users []string
	Types []ActivityType
}

// Engine runs the aggregation against the fetch and directory collaborators
type Engine struct {
	fetch Fetcher
	dir   Directory
	now   func() time.Time
}

// NewEngine builds an Engine, nowFn nil defaults to time.Now
func NewEngine(fetch Fetcher, dir Directory, nowFn func() time.Time) *Engine {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Engine{fetch: fetch, dir: dir, now: nowFn}
}

// Run resolves the range and author scope, fetches matching records, and
// assembles the full response. A no-access scope or an empty fetch still
// yields a range-complete zero response, never an error
func (e *Engine) Run(ctx context.Context, q Query) (*Response, error) {
	rng := ResolveRange(e.now(), q.From, q.To)

	scope := ResolveAuthorScope(q.Role, q.CallerID, q.Users)
	if scope.Kind == ScopeNone {
		return zeroResponse(rng), nil
	}

	records, err := e.fetch.FetchActivities(ctx, q.OrgID, Filter{
		Range:   rng,
		Types:   q.Types,
		Authors: scope,
	})
	if err != nil {
		return nil, err
	}

	sum := Aggregate(records, rng)

	contributors, err := e.resolveContributors(ctx, q.OrgID, sum.TopAuthors)
	if err != nil {
		return nil, err
	}

	return assemble(sum, contributors), nil
}

// resolveContributors batch-resolves names for the ranked authors
// unresolved ids keep their rank with the fallback name
func (e *Engine) resolveContributors(ctx context.Context, orgID string, top []AuthorCount) ([]Contributor, error) {
	out := make([]Contributor, 0, len(top))
	if len(top) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(top))
	for _, a := range top {
		ids = append(ids, a.UserID)
	}

	var resolved map[string]UserInfo
	if e.dir != nil {
		var err error
		resolved, err = e.dir.ResolveUsersByIDs(ctx, orgID, ids)
		if err != nil {
			return nil, err
		}
	}

	for _, a := range top {
		c := Contributor{UserID: a.UserID, Name: fallbackName, Count: a.Count}
		if info, ok := resolved[a.UserID]; ok && info.Name != "" {
			c.Name = info.Name
			c.AvatarURL = info.AvatarURL
		}
		out = append(out, c)
	}
	return out, nil
}

// assemble packages aggregation outputs into the response shape
func assemble(sum Summary, contributors []Contributor) *Response {
	return &Response{
		KPIs:            sum.KPIs,
		ByDay:           sum.ByDay,
		Mix:             sum.Mix,
		TopContributors: contributors,
	}
}

// zeroResponse is the range-complete empty result used for no-access scopes
func zeroResponse(rng Range) *Response {
	sum := Aggregate(nil, rng)
	return assemble(sum, []Contributor{})
}
