package analytics

import (
	"reflect"
	"testing"
)

func TestParseRole_FailsClosed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"manager", RoleManager},
		{"user", RoleUser},
		{"viewer", RoleViewer},
		{"", RoleViewer},
		{"superadmin", RoleViewer},
		{"Admin", RoleViewer}, // case sensitive on purpose
	}
	for _, tc := range cases {
		if got := ParseRole(tc.in); got != tc.want {
			t.Fatalf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveAuthorScope(t *testing.T) {
	t.Parallel()

	const self = "u-self"
	const other = "u-other"

	cases := []struct {
		name      string
		role      Role
		requested []string
		want      AuthorScope
	}{
		{"admin no request", RoleAdmin, nil, AuthorScope{Kind: ScopeAll}},
		{"admin empty request", RoleAdmin, []string{}, AuthorScope{Kind: ScopeAll}},
		{"admin others only", RoleAdmin, []string{other}, AuthorScope{Kind: ScopeSet, IDs: []string{other}}},
		{"admin dedupes", RoleAdmin, []string{other, other, self}, AuthorScope{Kind: ScopeSet, IDs: []string{other, self}}},
		{"manager self+others", RoleManager, []string{self, other}, AuthorScope{Kind: ScopeSet, IDs: []string{self, other}}},

		{"user no request pins to self", RoleUser, nil, AuthorScope{Kind: ScopeSet, IDs: []string{self}}},
		{"user empty request pins to self", RoleUser, []string{}, AuthorScope{Kind: ScopeSet, IDs: []string{self}}},
		{"user self only", RoleUser, []string{self}, AuthorScope{Kind: ScopeSet, IDs: []string{self}}},
		{"user self+others narrows to self", RoleUser, []string{self, other}, AuthorScope{Kind: ScopeSet, IDs: []string{self}}},
		{"user others only denied", RoleUser, []string{other}, AuthorScope{Kind: ScopeNone}},

		{"viewer no request pins to self", RoleViewer, nil, AuthorScope{Kind: ScopeSet, IDs: []string{self}}},
		{"viewer self only", RoleViewer, []string{self}, AuthorScope{Kind: ScopeSet, IDs: []string{self}}},
		{"viewer self+others narrows to self", RoleViewer, []string{other, self}, AuthorScope{Kind: ScopeSet, IDs: []string{self}}},
		{"viewer others only denied", RoleViewer, []string{other}, AuthorScope{Kind: ScopeNone}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveAuthorScope(tc.role, self, tc.requested)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ResolveAuthorScope = %+v, want %+v", got, tc.want)
			}
		})
	}
}
