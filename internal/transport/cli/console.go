// Package cli is a line-oriented terminal front end for the lead list view.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/leadflow/internal/domain"
	"github.com/heartmarshall/leadflow/internal/service/leadview"
)

type leadView interface {
	Load(ctx context.Context) error
	RequestPage(ctx context.Context, page int) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Refresh(ctx context.Context) error
	SetSearchTerm(term string)
	SetStatusFilter(f domain.StatusFilter) error
	SetSourceFilter(f domain.SourceFilter) error
	SetSort(key domain.SortKey, order domain.SortOrder) error
	ToggleSortOrder()
	Create(ctx context.Context, fields domain.LeadFields) (domain.Lead, error)
	Update(ctx context.Context, id string, fields domain.LeadFields) (domain.Lead, error)
	Delete(ctx context.Context, id string) error
	Lead(id string) (domain.Lead, bool)
	Snapshot() leadview.Snapshot
	Changes() <-chan struct{}
}

var errQuit = errors.New("quit")

// Console reads commands from in and renders the view to out.
type Console struct {
	view leadView
	in   io.Reader
	log  *slog.Logger

	mu          sync.Mutex // guards out and lastPending
	out         io.Writer
	lastPending bool
}

// NewConsole creates a Console.
func NewConsole(log *slog.Logger, view leadView, in io.Reader, out io.Writer) *Console {
	return &Console{
		view: view,
		in:   in,
		out:  out,
		log:  log.With("transport", "cli"),
	}
}

// Run executes commands until quit, end of input, or ctx cancellation.
// Search results that arrive in the background are rendered as they land.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		c.watch(ctx)
		return nil
	})

	// The reader may stay blocked on input after cancellation; it is not
	// waited for.
	done := make(chan error, 1)
	go func() { done <- c.readLoop(ctx) }()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
	}
	cancel()
	_ = g.Wait()

	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (c *Console) readLoop(ctx context.Context) error {
	c.printf("Type 'help' for commands.\n")
	c.render()

	sc := bufio.NewScanner(c.in)
	for {
		c.printf("> ")
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("cli: read input: %w", err)
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Exec(ctx, sc.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return err
			}
			c.printf("error: %v\n", err)
		}
	}
}

// watch re-renders when a pending search settles.
func (c *Console) watch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.view.Changes():
			snap := c.view.Snapshot()
			c.mu.Lock()
			settled := c.lastPending && !snap.SearchPending
			c.lastPending = snap.SearchPending
			c.mu.Unlock()
			if settled {
				c.printf("\n")
				c.renderSnapshot(snap)
				c.printf("> ")
			}
		}
	}
}

// Exec runs one command line.
func (c *Console) Exec(ctx context.Context, line string) error {
	args, err := tokenize(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(args[0]), args[1:]

	switch cmd {
	case "help", "?":
		c.printf("%s", helpText)
		return nil
	case "quit", "exit", "q":
		return errQuit
	case "list", "ls":
	case "load":
		err = c.view.Load(ctx)
	case "refresh":
		err = c.view.Refresh(ctx)
	case "next":
		err = c.view.NextPage(ctx)
	case "prev":
		err = c.view.PrevPage(ctx)
	case "page":
		err = c.page(ctx, args)
	case "search":
		term := strings.Join(args, " ")
		c.mu.Lock()
		c.lastPending = strings.TrimSpace(term) != ""
		c.mu.Unlock()
		c.view.SetSearchTerm(term)
		if term == "" {
			c.printf("search cleared\n")
		} else {
			c.printf("searching for %q...\n", term)
		}
		return nil
	case "status":
		err = c.withArg(args, "status", func(v string) error {
			return c.view.SetStatusFilter(domain.StatusFilter(v))
		})
	case "source":
		err = c.withArg(args, "source", func(v string) error {
			return c.view.SetSourceFilter(domain.SourceFilter(v))
		})
	case "sort":
		err = c.sort(args)
	case "order":
		c.view.ToggleSortOrder()
	case "show":
		return c.withArg(args, "id", c.show)
	case "add":
		err = c.add(ctx, args)
	case "edit":
		err = c.edit(ctx, args)
	case "delete", "rm":
		err = c.withArg(args, "id", func(id string) error {
			if err := c.view.Delete(ctx, id); err != nil {
				return err
			}
			c.printf("deleted %s\n", id)
			return nil
		})
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		c.log.DebugContext(ctx, "command failed", slog.String("command", cmd), slog.String("error", err.Error()))
		return err
	}

	c.render()
	return nil
}

func (c *Console) page(ctx context.Context, args []string) error {
	return c.withArg(args, "page number", func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("page: %w", err)
		}
		if err := c.view.RequestPage(ctx, n); err != nil {
			return err
		}
		if d := c.view.Snapshot().DeferredPage; d > 0 {
			c.printf("page %d will load when the search is cleared\n", d)
		}
		return nil
	})
}

func (c *Console) sort(args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("usage: sort <key> [asc|desc]")
	}
	order := c.view.Snapshot().Query.SortOrder
	if len(args) == 2 {
		order = domain.SortOrder(strings.ToLower(args[1]))
	}
	return c.view.SetSort(domain.SortKey(strings.ToLower(args[0])), order)
}

func (c *Console) show(id string) error {
	lead, ok := c.view.Lead(id)
	if !ok {
		return fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	writeDetail(c.out, lead)
	return nil
}

func (c *Console) add(ctx context.Context, args []string) error {
	fields := domain.DefaultLeadFields()
	if err := applyAssignments(&fields, args); err != nil {
		return err
	}
	lead, err := c.view.Create(ctx, fields)
	if err != nil {
		return err
	}
	c.printf("added %s\n", lead.ID)
	return nil
}

func (c *Console) edit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: edit <id> key=value...")
	}
	id := args[0]
	lead, ok := c.view.Lead(id)
	if !ok {
		return fmt.Errorf("lead %s is not loaded", id)
	}
	fields := lead.LeadFields
	if err := applyAssignments(&fields, args[1:]); err != nil {
		return err
	}
	if _, err := c.view.Update(ctx, id, fields); err != nil {
		return err
	}
	c.printf("updated %s\n", id)
	return nil
}

func (c *Console) withArg(args []string, name string, fn func(string) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one %s argument", name)
	}
	return fn(args[0])
}

func (c *Console) render() {
	c.renderSnapshot(c.view.Snapshot())
}

func (c *Console) renderSnapshot(snap leadview.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	writeSnapshot(c.out, snap)
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}

const helpText = `Commands:
  list                          show the current rows
  load | refresh                fetch the current page again
  page <n> | next | prev        navigate pages
  search <term>                 search all leads (empty term leaves search)
  status <status|all>           filter by status
  source <source|all>           filter by source
  sort <key> [asc|desc]         sort by created_at, first_name, last_name, score, lead_value
  order                         toggle the sort direction
  show <id>                     show one lead
  add key=value...              create a lead (first_name, last_name, email, phone required)
  edit <id> key=value...        update a lead
  delete <id>                   delete a lead
  quit
`
