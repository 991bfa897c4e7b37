// Package leadview is the lead list view model. It combines the paginated
// listing, the debounced search and local mutations into one snapshot.
package leadview

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/leadflow/internal/domain"
	"github.com/heartmarshall/leadflow/internal/service/projection"
	"github.com/heartmarshall/leadflow/internal/service/search"
	"github.com/heartmarshall/leadflow/internal/store"
)

// User-visible messages for failed actions.
const (
	MsgLoadFailed   = "Failed to load leads. Please try again."
	MsgSearchFailed = "Failed to search leads. Please try again."
	MsgCreateFailed = "Failed to add lead. Please try again."
	MsgUpdateFailed = "Failed to update lead. Please try again."
	MsgDeleteFailed = "Failed to delete lead. Please try again."
)

type gateway interface {
	FetchPage(ctx context.Context, page int) (domain.PageResult, error)
	Search(ctx context.Context, term string) ([]domain.Lead, error)
	Create(ctx context.Context, fields domain.LeadFields) (domain.Lead, error)
	Update(ctx context.Context, id string, lead domain.Lead) (domain.Lead, error)
	Delete(ctx context.Context, id string) error
}

// Config holds view behaviour settings.
type Config struct {
	SearchDebounce       time.Duration
	RefetchAfterMutation bool
}

// Snapshot is a consistent copy of everything the list screen shows.
type Snapshot struct {
	Query         domain.QueryState
	Mode          domain.Mode
	Rows          []domain.Lead
	Stats         projection.Stats
	Page          int
	TotalPages    int
	SearchPending bool
	// DeferredPage is a page request waiting for search mode to end; 0 if none.
	DeferredPage int
	Error        string
}

// Service owns the query state, the lead store and the search results.
type Service struct {
	gw      gateway
	store   *store.Store
	search  *search.Controller
	log     *slog.Logger
	refetch bool

	ctx     context.Context
	cancel  context.CancelFunc
	bg      sync.WaitGroup
	changes chan struct{}

	mu           sync.Mutex
	query        domain.QueryState
	searchRows   []domain.Lead
	searchShown  bool   // searchRows hold the applied results of appliedTerm
	appliedTerm  string // term of the last delivered search outcome
	deferredPage int
	fetchSeq     uint64
	lastErr      string
}

// NewService creates a view backed by gw. Extra search options are passed to
// the search controller, mainly to inject a fake clock in tests.
func NewService(log *slog.Logger, gw gateway, cfg Config, searchOpts ...search.Option) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Service{
		gw:      gw,
		store:   store.New(),
		log:     log.With("service", "leadview"),
		refetch: cfg.RefetchAfterMutation,
		ctx:     ctx,
		cancel:  cancel,
		changes: make(chan struct{}, 1),
		query:   domain.DefaultQueryState(),
	}

	opts := append([]search.Option{search.WithDelay(cfg.SearchDebounce)}, searchOpts...)
	s.search = search.NewController(log, gw, s.applySearch, opts...)
	return s
}

// Changes fires after every state change. Notifications coalesce: a
// receiver that falls behind sees one pending signal.
func (s *Service) Changes() <-chan struct{} {
	return s.changes
}

// Close stops the search controller and waits for background fetches.
func (s *Service) Close() {
	s.search.Close()
	s.cancel()
	s.bg.Wait()
}

// Snapshot projects the active rows through the current query.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, total := s.store.Page()
	res := projection.Project(s.activeRowsLocked(), s.query)

	mode := s.query.Mode()
	return Snapshot{
		Query:         s.query,
		Mode:          mode,
		Rows:          res.Rows,
		Stats:         res.Stats,
		Page:          page,
		TotalPages:    total,
		SearchPending: mode == domain.ModeSearch && s.appliedTerm != s.query.TrimmedTerm(),
		DeferredPage:  s.deferredPage,
		Error:         s.lastErr,
	}
}

// Lead looks up a loaded lead, search results first.
func (s *Service) Lead(id string) (domain.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.searchShown {
		for _, l := range s.searchRows {
			if l.ID == id {
				return l, true
			}
		}
	}
	return s.store.Get(id)
}

// SetStatusFilter changes the status filter. Only the projection changes.
func (s *Service) SetStatusFilter(f domain.StatusFilter) error {
	return s.updateQuery(func(q domain.QueryState) (domain.QueryState, error) {
		return q.WithStatusFilter(f)
	})
}

// SetSourceFilter changes the source filter. Only the projection changes.
func (s *Service) SetSourceFilter(f domain.SourceFilter) error {
	return s.updateQuery(func(q domain.QueryState) (domain.QueryState, error) {
		return q.WithSourceFilter(f)
	})
}

// SetSort changes the sort key and direction.
func (s *Service) SetSort(key domain.SortKey, order domain.SortOrder) error {
	return s.updateQuery(func(q domain.QueryState) (domain.QueryState, error) {
		return q.WithSort(key, order)
	})
}

// ToggleSortOrder flips the sort direction.
func (s *Service) ToggleSortOrder() {
	_ = s.updateQuery(func(q domain.QueryState) (domain.QueryState, error) {
		return q.ToggleSortOrder(), nil
	})
}

// SetSearchTerm records a search-term edit. The search itself is debounced.
func (s *Service) SetSearchTerm(term string) {
	s.mu.Lock()
	s.query = s.query.WithSearchTerm(term)
	s.mu.Unlock()

	s.search.Edit(term)
	s.notify()
}

// WaitSearch blocks until every issued search request has resolved.
func (s *Service) WaitSearch() {
	s.search.Wait()
}

func (s *Service) updateQuery(fn func(domain.QueryState) (domain.QueryState, error)) error {
	s.mu.Lock()
	q, err := fn(s.query)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.query = q
	s.mu.Unlock()

	s.notify()
	return nil
}

// activeRowsLocked returns the search results while they are shown, the
// stored page otherwise.
func (s *Service) activeRowsLocked() []domain.Lead {
	if s.searchShown {
		return s.searchRows
	}
	return s.store.All()
}

// searchActiveLocked reports whether either the query or the displayed rows
// are in search mode.
func (s *Service) searchActiveLocked() bool {
	return s.query.Mode() == domain.ModeSearch || s.searchShown
}

func (s *Service) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// errMessage prefers a server-supplied validation message over fallback.
func errMessage(err error, fallback string) string {
	if verr, ok := asValidation(err); ok && verr.Message != "" {
		return verr.Message
	}
	return fallback
}
