// Package search turns a stream of search-term edits into debounced search
// requests and delivers only the response to the most recently issued one.
package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/leadflow/internal/domain"
)

// DefaultDelay is the input inactivity that settles a term.
const DefaultDelay = 500 * time.Millisecond

type searcher interface {
	Search(ctx context.Context, term string) ([]domain.Lead, error)
}

// Outcome is delivered once per settled term that was not superseded.
// Cleared is set when the settled term was blank: no request was issued and
// search mode should be left.
type Outcome struct {
	Seq     uint64
	Term    string
	Leads   []domain.Lead
	Err     error
	Cleared bool
}

// Controller debounces edits and sequences search requests.
//
// deliver is called while the controller lock is held, which makes the
// staleness check and the apply atomic. deliver must not call back into the
// controller.
type Controller struct {
	searcher searcher
	deliver  func(Outcome)
	clock    clockwork.Clock
	delay    time.Duration
	log      *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	timer    clockwork.Timer
	edits    uint64 // bumped on every edit, invalidates older timers
	latest   uint64 // sequence number of the latest issued request
	closed   bool
	inflight sync.WaitGroup
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the real clock, mainly for tests.
func WithClock(c clockwork.Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithDelay sets the debounce interval.
func WithDelay(d time.Duration) Option {
	return func(ctl *Controller) {
		if d > 0 {
			ctl.delay = d
		}
	}
}

// NewController creates a Controller that runs searches with s and hands
// their outcomes to deliver.
func NewController(log *slog.Logger, s searcher, deliver func(Outcome), opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		searcher: s,
		deliver:  deliver,
		clock:    clockwork.NewRealClock(),
		delay:    DefaultDelay,
		log:      log.With("service", "search"),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Edit records a new term and restarts the debounce timer.
func (c *Controller) Edit(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.edits++
	gen := c.edits
	c.timer = c.clock.AfterFunc(c.delay, func() { c.settle(gen, term) })
}

// latestSeq returns the sequence number of the most recently issued request.
func (c *Controller) latestSeq() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest
}

func (c *Controller) settle(gen uint64, term string) {
	c.mu.Lock()
	if c.closed || gen != c.edits {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.latest++
	seq := c.latest

	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		defer c.mu.Unlock()
		c.log.Debug("search cleared", slog.Uint64("seq", seq))
		c.deliver(Outcome{Seq: seq, Cleared: true})
		return
	}

	c.inflight.Add(1)
	c.mu.Unlock()

	go c.run(seq, trimmed)
}

func (c *Controller) run(seq uint64, term string) {
	defer c.inflight.Done()

	c.log.DebugContext(c.ctx, "search issued", slog.Uint64("seq", seq), slog.String("term", term))
	leads, err := c.searcher.Search(c.ctx, term)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if seq != c.latest {
		c.log.DebugContext(c.ctx, "stale search result discarded",
			slog.Uint64("seq", seq),
			slog.Uint64("latest", c.latest),
			slog.String("term", term),
		)
		return
	}
	if err != nil {
		c.log.WarnContext(c.ctx, "search failed", slog.String("term", term), slog.String("error", err.Error()))
	}
	c.deliver(Outcome{Seq: seq, Term: term, Leads: leads, Err: err})
}

// Wait blocks until every issued request has resolved.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Close stops the pending timer, cancels in-flight requests and waits for
// them. No outcome is delivered after Close returns.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	c.cancel()
	c.inflight.Wait()
}
