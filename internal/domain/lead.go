package domain

import (
	"strings"
	"time"
)

const (
	MinScore = 0
	MaxScore = 100
)

// LeadFields holds every lead attribute the client is allowed to write.
type LeadFields struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Company        *string
	City           *string
	State          *string
	Source         Source
	Status         Status
	Score          int
	LeadValue      float64
	LastActivityAt *time.Time
	Notes          *string
	IsQualified    bool
}

// Lead is one prospect or customer record. ID and CreatedAt are assigned by the server.
type Lead struct {
	ID        string
	CreatedAt time.Time
	LeadFields
}

// FullName joins first and last name.
func (l Lead) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

// Validate checks the record invariants that hold for every stored lead.
func (l Lead) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(l.ID) == "" {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if l.CreatedAt.IsZero() {
		errs = append(errs, FieldError{Field: "created_at", Message: "required"})
	}
	errs = append(errs, l.LeadFields.check()...)
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Validate checks the writable fields, including the ones a user must fill in.
func (f LeadFields) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(f.FirstName) == "" {
		errs = append(errs, FieldError{Field: "first_name", Message: "required"})
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs = append(errs, FieldError{Field: "last_name", Message: "required"})
	}
	if strings.TrimSpace(f.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(f.Email, "@") {
		errs = append(errs, FieldError{Field: "email", Message: "invalid format"})
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "required"})
	}
	errs = append(errs, f.check()...)
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func (f LeadFields) check() []FieldError {
	var errs []FieldError
	if !f.Source.IsValid() {
		errs = append(errs, FieldError{Field: "source", Message: "invalid value"})
	}
	if !f.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "invalid value"})
	}
	if f.Score < MinScore || f.Score > MaxScore {
		errs = append(errs, FieldError{Field: "score", Message: "must be between 0 and 100"})
	}
	if f.LeadValue < 0 {
		errs = append(errs, FieldError{Field: "lead_value", Message: "must be non-negative"})
	}
	return errs
}

// DefaultLeadFields returns the values a new lead form starts with.
func DefaultLeadFields() LeadFields {
	return LeadFields{
		Source: SourceWebsite,
		Status: StatusNew,
	}
}
