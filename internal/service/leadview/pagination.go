package leadview

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/leadflow/internal/domain"
)

// Load fetches the requested page of the current query without a bounds
// check. It is used for the first fetch, when totalPages is still unknown.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	page := s.query.RequestedPage
	s.mu.Unlock()

	return s.fetch(ctx, page)
}

// RequestPage navigates to page. Pages outside [1, totalPages] are rejected
// without a network call. While search mode is active the request is
// deferred and executed once search mode is left.
func (s *Service) RequestPage(ctx context.Context, page int) error {
	s.mu.Lock()
	_, total := s.store.Page()
	if page < 1 || page > total {
		s.mu.Unlock()
		return fmt.Errorf("leadview: page %d of %d: %w", page, total, domain.ErrPageOutOfRange)
	}
	if s.searchActiveLocked() {
		s.deferredPage = page
		s.mu.Unlock()

		s.log.DebugContext(ctx, "page request deferred until search ends", slog.Int("page", page))
		s.notify()
		return nil
	}
	s.mu.Unlock()

	return s.fetch(ctx, page)
}

// NextPage requests the page after the current one.
func (s *Service) NextPage(ctx context.Context) error {
	page, _ := s.store.Page()
	return s.RequestPage(ctx, page+1)
}

// PrevPage requests the page before the current one.
func (s *Service) PrevPage(ctx context.Context) error {
	page, _ := s.store.Page()
	return s.RequestPage(ctx, page-1)
}

// Refresh re-fetches the current page.
func (s *Service) Refresh(ctx context.Context) error {
	page, _ := s.store.Page()
	return s.fetch(ctx, page)
}

// fetch loads page and replaces the store with it. A response that arrives
// after a newer fetch was issued is dropped with ErrSuperseded.
func (s *Service) fetch(ctx context.Context, page int) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	res, err := s.gw.FetchPage(ctx, page)

	s.mu.Lock()
	if seq != s.fetchSeq {
		s.mu.Unlock()
		s.log.DebugContext(ctx, "stale page discarded", slog.Int("page", page), slog.Uint64("seq", seq))
		return fmt.Errorf("leadview: fetch page %d: %w", page, domain.ErrSuperseded)
	}
	if err != nil {
		s.lastErr = MsgLoadFailed
		s.mu.Unlock()
		s.notify()
		return fmt.Errorf("leadview: fetch page %d: %w", page, err)
	}

	s.store.ReplacePage(res.Leads, res.Page, res.TotalPages)
	s.query = s.query.WithPage(res.Page)
	s.lastErr = ""
	s.mu.Unlock()

	s.log.DebugContext(ctx, "page loaded",
		slog.Int("page", res.Page),
		slog.Int("total_pages", res.TotalPages),
		slog.Int("count", len(res.Leads)),
	)
	s.notify()
	return nil
}
