package analytics

// Role is the closed set of caller roles
type Role string

// Role variants from most to least privileged
const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
	RoleViewer  Role = "viewer"
)

// ParseRole maps a raw role string onto the closed enumeration.
// Unrecognized values resolve to viewer so malformed role data can
// never widen visibility
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleManager:
		return RoleManager
	case RoleUser:
		return RoleUser
	case RoleViewer:
		return RoleViewer
	default:
		return RoleViewer
	}
}

// Privileged reports whether the role may query arbitrary authors
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleManager
}

// ScopeKind discriminates the author scope variants
type ScopeKind int

// Author scope variants
const (
	// ScopeAll places no author restriction on the fetch
	ScopeAll ScopeKind = iota
	// ScopeSet restricts the fetch to the listed author ids
	ScopeSet
	// ScopeNone means the caller may see nothing, short-circuit without a fetch
	ScopeNone
)

// AuthorScope is the authorization-narrowed author constraint
type AuthorScope struct {
	Kind ScopeKind
	IDs  []string
}

// ResolveAuthorScope narrows the requested author filter by the caller's role.
// Privileged roles pass their request through untouched (absent means all).
// Self-scoped roles are pinned to their own activities: a request that
// includes the caller collapses to the caller alone, a request that
// excludes the caller yields ScopeNone rather than an error
func ResolveAuthorScope(role Role, callerID string, requested []string) AuthorScope {
	if role.Privileged() {
		if len(requested) == 0 {
			return AuthorScope{Kind: ScopeAll}
		}
		ids := dedupe(requested)
		return AuthorScope{Kind: ScopeSet, IDs: ids}
	}

	// self-scoped: user and viewer
	if len(requested) == 0 {
		return AuthorScope{Kind: ScopeSet, IDs: []string{callerID}}
	}
	for _, id := range requested {
		if id == callerID {
			return AuthorScope{Kind: ScopeSet, IDs: []string{callerID}}
		}
	}
	return AuthorScope{Kind: ScopeNone}
}

// dedupe keeps first occurrences and preserves order
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
