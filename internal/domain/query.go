package domain

import "strings"

// QueryState is the user's current intent. It is an immutable value: every
// transition returns a new state and leaves the receiver untouched.
type QueryState struct {
	SearchTerm    string
	StatusFilter  StatusFilter
	SourceFilter  SourceFilter
	SortKey       SortKey
	SortOrder     SortOrder
	RequestedPage int
}

// DefaultQueryState is no search, all filters, newest first, page 1.
func DefaultQueryState() QueryState {
	return QueryState{
		StatusFilter:  FilterAll,
		SourceFilter:  FilterAll,
		SortKey:       SortByCreatedAt,
		SortOrder:     SortDesc,
		RequestedPage: 1,
	}
}

// Mode reports which row source is active. Search mode is on exactly when the
// trimmed search term is non-empty.
func (q QueryState) Mode() Mode {
	if q.TrimmedTerm() != "" {
		return ModeSearch
	}
	return ModeBrowse
}

// TrimmedTerm is the search term without surrounding whitespace.
func (q QueryState) TrimmedTerm() string {
	return strings.TrimSpace(q.SearchTerm)
}

// WithSearchTerm returns q with the raw, untrimmed search term replaced.
func (q QueryState) WithSearchTerm(term string) QueryState {
	q.SearchTerm = term
	return q
}

// WithStatusFilter returns q filtered by f, or q unchanged and a
// ValidationError when f is unknown.
func (q QueryState) WithStatusFilter(f StatusFilter) (QueryState, error) {
	if !f.IsValid() {
		return q, NewValidationError("status_filter", "invalid value")
	}
	q.StatusFilter = f
	return q, nil
}

// WithSourceFilter returns q filtered by f, or q unchanged and a
// ValidationError when f is unknown.
func (q QueryState) WithSourceFilter(f SourceFilter) (QueryState, error) {
	if !f.IsValid() {
		return q, NewValidationError("source_filter", "invalid value")
	}
	q.SourceFilter = f
	return q, nil
}

// WithSort returns q ordered by key and order. Both are checked and reported
// together.
func (q QueryState) WithSort(key SortKey, order SortOrder) (QueryState, error) {
	var errs []FieldError
	if !key.IsValid() {
		errs = append(errs, FieldError{Field: "sort_key", Message: "invalid value"})
	}
	if !order.IsValid() {
		errs = append(errs, FieldError{Field: "sort_order", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return q, NewValidationErrors(errs)
	}
	q.SortKey = key
	q.SortOrder = order
	return q, nil
}

// ToggleSortOrder returns q with the sort direction flipped.
func (q QueryState) ToggleSortOrder() QueryState {
	if q.SortOrder == SortAsc {
		q.SortOrder = SortDesc
	} else {
		q.SortOrder = SortAsc
	}
	return q
}

// WithPage returns q with the requested page set. Range checks belong to the
// caller, which knows totalPages.
func (q QueryState) WithPage(page int) QueryState {
	q.RequestedPage = page
	return q
}
