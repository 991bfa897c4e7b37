package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/heartmarshall/leadflow/internal/domain"
	"github.com/heartmarshall/leadflow/internal/service/leadview"
)

const dateLayout = "2006-01-02 15:04"

func writeSnapshot(w io.Writer, snap leadview.Snapshot) {
	fmt.Fprintf(w, "Total: %d  New: %d  Qualified: %d  Won: %d\n",
		snap.Stats.Total, snap.Stats.New, snap.Stats.Qualified, snap.Stats.Won)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tCOMPANY\tSOURCE\tSTATUS\tSCORE\tVALUE\tCREATED")
	for _, l := range snap.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			l.ID, l.FullName(), l.Email, deref(l.Company), l.Source, l.Status,
			l.Score, money(l.LeadValue), l.CreatedAt.Local().Format(dateLayout))
	}
	tw.Flush() //nolint:errcheck
	if len(snap.Rows) == 0 {
		fmt.Fprintln(w, "No leads found.")
	}

	q := snap.Query
	if snap.Mode == domain.ModeSearch {
		state := ""
		if snap.SearchPending {
			state = " (searching...)"
		}
		fmt.Fprintf(w, "Search: %q%s", q.TrimmedTerm(), state)
		if snap.DeferredPage > 0 {
			fmt.Fprintf(w, "  [page %d queued]", snap.DeferredPage)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintf(w, "Page %d of %d\n", snap.Page, snap.TotalPages)
	}
	fmt.Fprintf(w, "Filters: status=%s source=%s  Sort: %s %s\n", q.StatusFilter, q.SourceFilter, q.SortKey, q.SortOrder)
	if snap.Error != "" {
		fmt.Fprintf(w, "! %s\n", snap.Error)
	}
}

func writeDetail(w io.Writer, l domain.Lead) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	row := func(k, v string) { fmt.Fprintf(tw, "%s\t%s\n", k, v) }

	row("ID", l.ID)
	row("Name", l.FullName())
	row("Email", l.Email)
	row("Phone", l.Phone)
	row("Company", deref(l.Company))
	row("City", deref(l.City))
	row("State", deref(l.State))
	row("Source", l.Source.String())
	row("Status", l.Status.String())
	row("Score", strconv.Itoa(l.Score))
	row("Value", money(l.LeadValue))
	row("Qualified", strconv.FormatBool(l.IsQualified))
	row("Created", l.CreatedAt.Local().Format(dateLayout))
	if l.LastActivityAt != nil {
		row("Last activity", l.LastActivityAt.Local().Format(dateLayout))
	} else {
		row("Last activity", "-")
	}
	row("Notes", deref(l.Notes))
	tw.Flush() //nolint:errcheck
}

func deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func money(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}
