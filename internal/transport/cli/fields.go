package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/leadflow/internal/adapter/leadapi"
	"github.com/heartmarshall/leadflow/internal/domain"
)

// tokenize splits a command line on spaces, keeping double-quoted runs
// together. `notes="call back friday"` is one token.
func tokenize(line string) ([]string, error) {
	var (
		tokens []string
		cur    strings.Builder
		quoted bool
		inTok  bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			inTok = true
		case r == ' ' || r == '\t':
			if quoted {
				cur.WriteRune(r)
				continue
			}
			if inTok {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inTok = false
			}
		default:
			cur.WriteRune(r)
			inTok = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quote")
	}
	if inTok {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}

// applyAssignments sets lead fields from key=value tokens. An empty value
// clears an optional field.
func applyAssignments(f *domain.LeadFields, args []string) error {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", arg)
		}
		if err := setField(f, strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	return nil
}

func setField(f *domain.LeadFields, key, value string) error {
	switch key {
	case "first_name":
		f.FirstName = value
	case "last_name":
		f.LastName = value
	case "email":
		f.Email = value
	case "phone":
		f.Phone = value
	case "company":
		f.Company = optional(value)
	case "city":
		f.City = optional(value)
	case "state":
		f.State = optional(value)
	case "notes":
		f.Notes = optional(value)
	case "source":
		f.Source = domain.Source(value)
	case "status":
		f.Status = domain.Status(value)
	case "score":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("score: %w", err)
		}
		f.Score = n
	case "lead_value":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("lead_value: %w", err)
		}
		f.LeadValue = v
	case "is_qualified":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("is_qualified: %w", err)
		}
		f.IsQualified = b
	case "last_activity_at":
		if value == "" {
			f.LastActivityAt = nil
			return nil
		}
		t, err := leadapi.ParseTime(value)
		if err != nil {
			return fmt.Errorf("last_activity_at: %w", err)
		}
		f.LastActivityAt = &t
	default:
		return fmt.Errorf("unknown field %q", key)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
