package leadapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/heartmarshall/leadflow/internal/domain"
)

// statusError maps a non-2xx response to the domain error taxonomy.
func statusError(code int, body []byte) error {
	switch {
	case code == http.StatusNotFound:
		return domain.ErrNotFound
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return domain.ErrUnauthorized
	case code >= 400 && code < 500:
		return validationError(code, body)
	default:
		return fmt.Errorf("%w: status %d", domain.ErrServer, code)
	}
}

// validationError builds a ValidationError from an error body. A body that
// cannot be decoded still yields a ValidationError with the status text.
func validationError(code int, body []byte) *domain.ValidationError {
	verr := &domain.ValidationError{}

	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		verr.Message = strings.TrimSpace(resp.Message)
		for _, fe := range resp.Errors {
			verr.Errors = append(verr.Errors, domain.FieldError{Field: fe.Field, Message: fe.Message})
		}
	}
	if verr.Message == "" && len(verr.Errors) == 0 {
		verr.Message = strings.ToLower(http.StatusText(code))
	}
	return verr
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: malformed response: %s", domain.ErrServer, fmt.Sprintf(format, args...))
}
