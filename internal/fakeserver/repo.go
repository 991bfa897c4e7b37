package fakeserver

import (
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/leadflow/internal/domain"
)

// Repo is an in-memory lead collection ordered newest first.
type Repo struct {
	clock clockwork.Clock
	newID func() string

	mu    sync.RWMutex
	leads []domain.Lead
}

// RepoOption configures a Repo.
type RepoOption func(*Repo)

// WithClock sets the clock used for created_at.
func WithClock(c clockwork.Clock) RepoOption {
	return func(r *Repo) { r.clock = c }
}

// WithIDGenerator sets the id generator for new leads.
func WithIDGenerator(fn func() string) RepoOption {
	return func(r *Repo) { r.newID = fn }
}

// NewRepo creates an empty repository.
func NewRepo(opts ...RepoOption) *Repo {
	r := &Repo{
		clock: clockwork.NewRealClock(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Count returns the number of stored leads.
func (r *Repo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.leads)
}

// List returns one page of leads. The page is clamped to [1, totalPages];
// an empty collection is page 1 of 0.
func (r *Repo) List(page, limit int) (leads []domain.Lead, current, totalPages int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totalPages = int(math.Ceil(float64(len(r.leads)) / float64(limit)))
	current = min(max(page, 1), max(totalPages, 1))

	start := min((current-1)*limit, len(r.leads))
	end := min(start+limit, len(r.leads))
	return slices.Clone(r.leads[start:end]), current, totalPages
}

// Search matches term case-insensitively against name, email and company.
// Whitespace runs in the term and the fields compare equal.
func (r *Repo) Search(term string) []domain.Lead {
	needle := domain.NormalizeSearch(term)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Lead, 0)
	for _, l := range r.leads {
		if matches(l, needle) {
			out = append(out, l)
		}
	}
	return out
}

func matches(l domain.Lead, needle string) bool {
	haystack := []string{l.FirstName, l.LastName, l.FullName(), l.Email}
	if l.Company != nil {
		haystack = append(haystack, *l.Company)
	}
	for _, h := range haystack {
		if strings.Contains(domain.NormalizeSearch(h), needle) {
			return true
		}
	}
	return false
}

// Create stores a new lead with a fresh id and creation time.
func (r *Repo) Create(fields domain.LeadFields) domain.Lead {
	lead := domain.Lead{
		ID:         r.newID(),
		CreatedAt:  r.clock.Now().UTC(),
		LeadFields: fields,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = slices.Insert(r.leads, 0, lead)
	return lead
}

// Update overwrites the writable fields of the lead stored under id.
func (r *Repo) Update(id string, fields domain.LeadFields) (domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return domain.Lead{}, domain.ErrNotFound
	}
	r.leads[i].LeadFields = fields
	return r.leads[i], nil
}

// Delete removes the lead stored under id.
func (r *Repo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.leads = slices.Delete(r.leads, i, i+1)
	return nil
}

// Put stores leads as given, keeping newest-first order. Used for seeding.
func (r *Repo) Put(leads ...domain.Lead) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leads = append(r.leads, leads...)
	slices.SortStableFunc(r.leads, func(a, b domain.Lead) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func (r *Repo) indexLocked(id string) int {
	return slices.IndexFunc(r.leads, func(l domain.Lead) bool { return l.ID == id })
}
