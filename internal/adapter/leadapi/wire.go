package leadapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/leadflow/internal/domain"
)

// LeadJSON is the wire form of a lead. The server names the id "_id"; "id" is
// accepted on input as well.
type LeadJSON struct {
	MongoID        string  `json:"_id,omitempty"`
	ID             string  `json:"id,omitempty"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Company        *string `json:"company,omitempty"`
	City           *string `json:"city,omitempty"`
	State          *string `json:"state,omitempty"`
	Source         string  `json:"source"`
	Status         string  `json:"status"`
	Score          int     `json:"score"`
	LeadValue      float64 `json:"lead_value"`
	LastActivityAt *string `json:"last_activity_at"`
	Notes          *string `json:"notes,omitempty"`
	IsQualified    bool    `json:"is_qualified"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

// timeLayouts are tried in order. The date-only and minute precision forms
// come from HTML date inputs.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime parses an ISO-8601 timestamp.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// FormatTime renders t the way the server does.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// EncodeFields converts the writable lead fields to their wire form.
func EncodeFields(f domain.LeadFields) LeadJSON {
	out := LeadJSON{
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		Phone:       f.Phone,
		Company:     f.Company,
		City:        f.City,
		State:       f.State,
		Source:      f.Source.String(),
		Status:      f.Status.String(),
		Score:       f.Score,
		LeadValue:   f.LeadValue,
		Notes:       f.Notes,
		IsQualified: f.IsQualified,
	}
	if f.LastActivityAt != nil {
		ts := FormatTime(*f.LastActivityAt)
		out.LastActivityAt = &ts
	}
	return out
}

// EncodeLead converts a full lead to its wire form.
func EncodeLead(l domain.Lead) LeadJSON {
	out := EncodeFields(l.LeadFields)
	out.MongoID = l.ID
	if !l.CreatedAt.IsZero() {
		out.CreatedAt = FormatTime(l.CreatedAt)
	}
	return out
}

// Key returns the lead id, preferring "_id".
func (j LeadJSON) Key() string {
	if j.MongoID != "" {
		return j.MongoID
	}
	return j.ID
}

// Fields converts the writable part of the wire form. An empty or null
// last_activity_at is absent.
func (j LeadJSON) Fields() (domain.LeadFields, error) {
	f := domain.LeadFields{
		FirstName:   j.FirstName,
		LastName:    j.LastName,
		Email:       j.Email,
		Phone:       j.Phone,
		Company:     j.Company,
		City:        j.City,
		State:       j.State,
		Source:      domain.Source(j.Source),
		Status:      domain.Status(j.Status),
		Score:       j.Score,
		LeadValue:   j.LeadValue,
		Notes:       j.Notes,
		IsQualified: j.IsQualified,
	}
	if j.LastActivityAt != nil && strings.TrimSpace(*j.LastActivityAt) != "" {
		t, err := ParseTime(*j.LastActivityAt)
		if err != nil {
			return domain.LeadFields{}, fmt.Errorf("last_activity_at: %w", err)
		}
		f.LastActivityAt = &t
	}
	return f, nil
}

// DecodeLead converts a server lead. The result must satisfy Lead.Validate:
// an id and created_at are required and enums and ranges are checked.
func DecodeLead(j LeadJSON) (domain.Lead, error) {
	id := j.Key()
	if strings.TrimSpace(id) == "" {
		return domain.Lead{}, fmt.Errorf("lead without id")
	}

	fields, err := j.Fields()
	if err != nil {
		return domain.Lead{}, fmt.Errorf("lead %s: %w", id, err)
	}

	l := domain.Lead{ID: id, LeadFields: fields}
	if strings.TrimSpace(j.CreatedAt) != "" {
		l.CreatedAt, err = ParseTime(j.CreatedAt)
		if err != nil {
			return domain.Lead{}, fmt.Errorf("lead %s: created_at: %w", id, err)
		}
	}
	if err := l.Validate(); err != nil {
		return domain.Lead{}, fmt.Errorf("lead %s: %w", id, err)
	}
	return l, nil
}

func decodeLeads(in []LeadJSON) ([]domain.Lead, error) {
	out := make([]domain.Lead, 0, len(in))
	for _, j := range in {
		l, err := DecodeLead(j)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
