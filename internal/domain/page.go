package domain

import "fmt"

// PageResult is one page of the server-side lead listing.
type PageResult struct {
	Leads      []Lead
	Page       int
	TotalPages int
}

// Validate checks the envelope invariant: page is at most totalPages unless
// the listing is empty.
func (p PageResult) Validate() error {
	if p.TotalPages < 0 {
		return fmt.Errorf("total pages %d is negative", p.TotalPages)
	}
	if p.Page < 1 {
		return fmt.Errorf("page %d is not positive", p.Page)
	}
	if p.TotalPages > 0 && p.Page > p.TotalPages {
		return fmt.Errorf("page %d exceeds total pages %d", p.Page, p.TotalPages)
	}
	return nil
}
