package domain

// Source identifies the acquisition channel of a lead.
type Source string

const (
	SourceWebsite     Source = "website"
	SourceFacebookAds Source = "facebook_ads"
	SourceGoogleAds   Source = "google_ads"
	SourceReferral    Source = "referral"
	SourceEvents      Source = "events"
	SourceOther       Source = "other"
)

func (s Source) String() string { return string(s) }

func (s Source) IsValid() bool {
	switch s {
	case SourceWebsite, SourceFacebookAds, SourceGoogleAds, SourceReferral, SourceEvents, SourceOther:
		return true
	}
	return false
}

// Status is the position of a lead in the sales pipeline.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusWon       Status = "won"
	StatusLost      Status = "lost"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusWon, StatusLost:
		return true
	}
	return false
}

// FilterAll is the filter value that passes every row.
const FilterAll = "all"

// StatusFilter is either FilterAll or a Status value.
type StatusFilter string

func (f StatusFilter) IsValid() bool {
	return f == FilterAll || Status(f).IsValid()
}

// Matches reports whether a lead with status s passes the filter.
func (f StatusFilter) Matches(s Status) bool {
	return f == FilterAll || Status(f) == s
}

// SourceFilter is either FilterAll or a Source value.
type SourceFilter string

func (f SourceFilter) IsValid() bool {
	return f == FilterAll || Source(f).IsValid()
}

// Matches reports whether a lead with source s passes the filter.
func (f SourceFilter) Matches(s Source) bool {
	return f == FilterAll || Source(f) == s
}

// SortKey names the lead field the list is ordered by.
type SortKey string

const (
	SortByCreatedAt SortKey = "created_at"
	SortByFirstName SortKey = "first_name"
	SortByLastName  SortKey = "last_name"
	SortByScore     SortKey = "score"
	SortByLeadValue SortKey = "lead_value"
)

func (k SortKey) String() string { return string(k) }

func (k SortKey) IsValid() bool {
	switch k {
	case SortByCreatedAt, SortByFirstName, SortByLastName, SortByScore, SortByLeadValue:
		return true
	}
	return false
}

// SortOrder is the direction of the list ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// Mode is the active row source of the view.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "browse"
}
