package analytics

import (
	"math"
	"sort"
)

// AuthorCount is an unresolved contributor, userID plus activity count
type AuthorCount struct {
	UserID string
	Count  int
}

// Summary is the pure aggregation output before contributor names are resolved
type Summary struct {
	KPIs       KPIs
	ByDay      []DayCount
	Mix        []TypeShare
	TopAuthors []AuthorCount
}

// maxContributors caps the ranked contributor list
const maxContributors = 10

// Aggregate computes all analytics from an already-filtered record list.
// It is a pure function of records and rng: no clock, no I/O, no shared state
func Aggregate(records []Record, rng Range) Summary {
	total := len(records)

	// day series, zero-initialized over the full range so no day is ever omitted
	days := rng.Days()
	dayIdx := make(map[string]int, len(days))
	byDay := make([]DayCount, len(days))
	for i, d := range days {
		key := FormatDateKey(d)
		dayIdx[key] = i
		byDay[i] = DayCount{Date: key, Count: 0}
	}

	// fixed-size counters per enum variant, no open-keyed map
	var typeCounts [len(AllTypes)]int

	// per-author grouping with first-seen order for the tie-break
	type authorAgg struct {
		count     int
		firstSeen int
	}
	authors := make(map[string]*authorAgg)
	authorOrder := make([]string, 0)

	// completion deltas in ms for the median
	var deltas []int64

	distinctAuthors := 0
	for _, rec := range records {
		if i, ok := dayIdx[FormatDateKey(rec.CreatedAt)]; ok {
			byDay[i].Count++
		}
		switch rec.Type {
		case TypeCall:
			typeCounts[0]++
		case TypeEmail:
			typeCounts[1]++
		case TypeMeeting:
			typeCounts[2]++
		case TypeNote:
			typeCounts[3]++
		case TypeTask:
			typeCounts[4]++
		}
		a, ok := authors[rec.AuthorID]
		if !ok {
			a = &authorAgg{firstSeen: len(authorOrder)}
			authors[rec.AuthorID] = a
			authorOrder = append(authorOrder, rec.AuthorID)
			distinctAuthors++
		}
		a.count++
		if rec.CompletedAt != nil {
			deltas = append(deltas, rec.CompletedAt.Sub(rec.CreatedAt).Milliseconds())
		}
	}

	mix := make([]TypeShare, len(AllTypes))
	for i, t := range AllTypes {
		pct := 0.0
		if total > 0 {
			pct = round1(100 * float64(typeCounts[i]) / float64(total))
		}
		mix[i] = TypeShare{Type: t, Count: typeCounts[i], Percent: pct}
	}

	top := make([]AuthorCount, 0, len(authorOrder))
	for _, id := range authorOrder {
		top = append(top, AuthorCount{UserID: id, Count: authors[id].count})
	}
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return authors[top[i].UserID].firstSeen < authors[top[j].UserID].firstSeen
	})
	if len(top) > maxContributors {
		top = top[:maxContributors]
	}

	return Summary{
		KPIs: KPIs{
			TotalActivities:             total,
			ActiveUsers:                 distinctAuthors,
			AvgDailyActivities:          round1(float64(total) / float64(DaysBetweenInclusive(rng.Start, rng.End))),
			MedianTimeToFirstResponseMS: medianMS(deltas),
		},
		ByDay:      byDay,
		Mix:        mix,
		TopAuthors: top,
	}
}

// medianMS returns the statistical median of the deltas rounded to the
// nearest integer millisecond, 0 when there are no completed records
func medianMS(deltas []int64) int64 {
	n := len(deltas)
	if n == 0 {
		return 0
	}
	sort.Slice(deltas, func(i, j int) bool { return deltas[i] < deltas[j] })
	if n%2 == 1 {
		return deltas[n/2]
	}
	mid := float64(deltas[n/2-1]+deltas[n/2]) / 2
	return int64(math.Round(mid))
}

// round1 rounds half-up to 1 decimal place
func round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
