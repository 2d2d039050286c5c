// Package analytics computes org-scoped activity analytics: range-bounded
// KPIs, a zero-filled per-day series, a fixed type mix, and ranked top
// contributors, subject to role-based visibility rules
package analytics

import "time"

// ActivityType is the closed set of activity kinds
type ActivityType string

// Activity type variants in canonical mix order
const (
	TypeCall    ActivityType = "call"
	TypeEmail   ActivityType = "email"
	TypeMeeting ActivityType = "meeting"
	TypeNote    ActivityType = "note"
	TypeTask    ActivityType = "task"
)

// AllTypes is the fixed enumeration order used for the mix breakdown
var AllTypes = [5]ActivityType{TypeCall, TypeEmail, TypeMeeting, TypeNote, TypeTask}

// ValidType reports whether t is a member of the closed enumeration
func ValidType(t ActivityType) bool {
	for _, v := range AllTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Record is one raw activity event as fetched from storage
// read-only to this package
type Record struct {
	ID          string
	Type        ActivityType
	CreatedAt   time.Time
	AuthorID    string
	CompletedAt *time.Time
	DueAt       *time.Time
}

// Range is an inclusive UTC day range, both bounds at UTC midnight
type Range struct {
	Start time.Time
	End   time.Time
}

// Filter is the storage-level query constraint derived from a request
// OrgID always scopes the fetch, author scoping comes from the resolver
type Filter struct {
	Range   Range
	Types   []ActivityType
	Authors AuthorScope
}

// KPIs are the headline numbers for the requested range
type KPIs struct {
	TotalActivities             int     `json:"total_activities"`
	ActiveUsers                 int     `json:"active_users"`
	AvgDailyActivities          float64 `json:"avg_daily_activities"`
	MedianTimeToFirstResponseMS int64   `json:"median_time_to_first_response_ms"`
}

// DayCount is one bucket of the per-day series
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// TypeShare is one entry of the type mix breakdown
type TypeShare struct {
	Type    ActivityType `json:"type"`
	Count   int          `json:"count"`
	Percent float64      `json:"percent"`
}

// Contributor is one ranked author with a resolved display name
type Contributor struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Count     int    `json:"count"`
}

// Response is the complete analytics result for one query
type Response struct {
	KPIs            KPIs        `json:"kpis"`
	ByDay           []DayCount  `json:"by_day"`
	Mix             []TypeShare `json:"mix"`
	TopContributors []Contributor `json:"top_contributors"`
}
