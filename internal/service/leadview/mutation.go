package leadview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/leadflow/internal/domain"
)

// Create adds a lead through the gateway and inserts the server's copy. The
// page number and total page count are left as they are.
func (s *Service) Create(ctx context.Context, fields domain.LeadFields) (domain.Lead, error) {
	if err := fields.Validate(); err != nil {
		s.fail(errMessage(err, MsgCreateFailed))
		return domain.Lead{}, err
	}

	lead, err := s.gw.Create(ctx, fields)
	if err != nil {
		s.fail(errMessage(err, MsgCreateFailed))
		return domain.Lead{}, fmt.Errorf("leadview: create lead: %w", err)
	}

	s.mu.Lock()
	s.store.Insert(lead)
	s.lastErr = ""
	s.mu.Unlock()

	s.log.InfoContext(ctx, "lead created", slog.String("lead_id", lead.ID))
	s.notify()
	s.refetchAfterMutation(ctx)
	return lead, nil
}

// Update writes fields to the lead stored under id and replaces the local
// copy with the server's response.
func (s *Service) Update(ctx context.Context, id string, fields domain.LeadFields) (domain.Lead, error) {
	if err := fields.Validate(); err != nil {
		s.fail(errMessage(err, MsgUpdateFailed))
		return domain.Lead{}, err
	}

	lead := domain.Lead{ID: id, LeadFields: fields}
	if existing, ok := s.Lead(id); ok {
		lead.CreatedAt = existing.CreatedAt
	}

	updated, err := s.gw.Update(ctx, id, lead)
	if err != nil {
		s.fail(errMessage(err, MsgUpdateFailed))
		return domain.Lead{}, fmt.Errorf("leadview: update lead %s: %w", id, err)
	}

	s.mu.Lock()
	s.store.Replace(id, updated)
	if i := s.searchIndexLocked(id); i >= 0 {
		updated.ID = id
		s.searchRows = slices.Clone(s.searchRows)
		s.searchRows[i] = updated
	}
	s.lastErr = ""
	s.mu.Unlock()

	s.log.InfoContext(ctx, "lead updated", slog.String("lead_id", id))
	s.notify()
	return updated, nil
}

// Delete removes the lead stored under id. A lead the server no longer knows
// is removed locally as if the delete had succeeded.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.gw.Delete(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		s.log.InfoContext(ctx, "lead already deleted on server", slog.String("lead_id", id))
	default:
		s.fail(MsgDeleteFailed)
		return fmt.Errorf("leadview: delete lead %s: %w", id, err)
	}

	s.mu.Lock()
	s.store.Remove(id)
	if i := s.searchIndexLocked(id); i >= 0 {
		s.searchRows = slices.Delete(slices.Clone(s.searchRows), i, i+1)
	}
	s.lastErr = ""
	s.mu.Unlock()

	s.log.InfoContext(ctx, "lead deleted", slog.String("lead_id", id))
	s.notify()
	s.refetchAfterMutation(ctx)
	return nil
}

// refetchAfterMutation reloads the current page in browse mode when the view
// is configured to trade a request for exact pagination counts.
func (s *Service) refetchAfterMutation(ctx context.Context) {
	if !s.refetch {
		return
	}
	s.mu.Lock()
	active := s.searchActiveLocked()
	s.mu.Unlock()
	if active {
		return
	}
	if err := s.Refresh(ctx); err != nil {
		s.log.WarnContext(ctx, "refetch after mutation failed", slog.String("error", err.Error()))
	}
}

func (s *Service) searchIndexLocked(id string) int {
	if !s.searchShown {
		return -1
	}
	return slices.IndexFunc(s.searchRows, func(l domain.Lead) bool { return l.ID == id })
}

func (s *Service) fail(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
	s.notify()
}

func asValidation(err error) (*domain.ValidationError, bool) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
