package leadview

import (
	"log/slog"

	"github.com/heartmarshall/leadflow/internal/service/search"
)

// applySearch is the search controller's delivery callback. It runs with the
// controller lock held, so it must not call back into the controller.
func (s *Service) applySearch(o search.Outcome) {
	s.mu.Lock()

	if o.Cleared {
		s.searchShown = false
		s.searchRows = nil
		s.appliedTerm = ""
		page := s.deferredPage
		s.deferredPage = 0
		s.mu.Unlock()

		s.log.Debug("search mode left", slog.Uint64("seq", o.Seq))
		if page > 0 {
			s.runDeferred(page)
		}
		s.notify()
		return
	}

	s.appliedTerm = o.Term
	if o.Err != nil {
		// Prior rows stay on screen.
		s.lastErr = MsgSearchFailed
		s.mu.Unlock()
		s.notify()
		return
	}

	s.searchRows = o.Leads
	s.searchShown = true
	s.lastErr = ""
	s.mu.Unlock()

	s.log.Debug("search results applied",
		slog.Uint64("seq", o.Seq),
		slog.String("term", o.Term),
		slog.Int("count", len(o.Leads)),
	)
	s.notify()
}

// runDeferred fetches a page that was requested during search mode.
func (s *Service) runDeferred(page int) {
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		if err := s.fetch(s.ctx, page); err != nil {
			s.log.WarnContext(s.ctx, "deferred page fetch failed",
				slog.Int("page", page),
				slog.String("error", err.Error()),
			)
		}
	}()
}
