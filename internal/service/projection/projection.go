// Package projection derives the displayed lead rows and the summary counts
// from the active row source and the current query.
package projection

import (
	"cmp"
	"slices"
	"strings"

	"github.com/heartmarshall/leadflow/internal/domain"
)

// Stats are the summary counts shown above the list. They are computed over
// the unfiltered row source so toggling a filter leaves them unchanged.
type Stats struct {
	Total     int
	New       int
	Qualified int
	Won       int
}

// Result is the projected view of a row source.
type Result struct {
	Rows  []domain.Lead
	Stats Stats
}

type comparator func(a, b domain.Lead) int

var comparators = map[domain.SortKey]comparator{
	domain.SortByCreatedAt: func(a, b domain.Lead) int { return a.CreatedAt.Compare(b.CreatedAt) },
	domain.SortByFirstName: func(a, b domain.Lead) int { return strings.Compare(a.FirstName, b.FirstName) },
	domain.SortByLastName:  func(a, b domain.Lead) int { return strings.Compare(a.LastName, b.LastName) },
	domain.SortByScore:     func(a, b domain.Lead) int { return cmp.Compare(a.Score, b.Score) },
	domain.SortByLeadValue: func(a, b domain.Lead) int { return cmp.Compare(a.LeadValue, b.LeadValue) },
}

// Project filters and sorts rows according to q. The input slice is not
// modified. Leads with equal sort keys keep their input order in both
// directions. An unknown sort key leaves the filtered rows in input order.
func Project(rows []domain.Lead, q domain.QueryState) Result {
	out := make([]domain.Lead, 0, len(rows))
	for _, l := range rows {
		if q.StatusFilter.Matches(l.Status) && q.SourceFilter.Matches(l.Source) {
			out = append(out, l)
		}
	}

	if compare, ok := comparators[q.SortKey]; ok {
		if q.SortOrder == domain.SortDesc {
			asc := compare
			compare = func(a, b domain.Lead) int { return -asc(a, b) }
		}
		slices.SortStableFunc(out, compare)
	}

	return Result{Rows: out, Stats: Summarize(rows)}
}

// Summarize counts rows by the statuses shown on the summary cards.
func Summarize(rows []domain.Lead) Stats {
	st := Stats{Total: len(rows)}
	for _, l := range rows {
		switch l.Status {
		case domain.StatusNew:
			st.New++
		case domain.StatusQualified:
			st.Qualified++
		case domain.StatusWon:
			st.Won++
		}
	}
	return st
}
