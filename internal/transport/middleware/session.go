package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/leadflow/pkg/ctxutil"
)

// Session requires the cookie named name to equal value. An empty value
// disables the check and every request passes anonymously.
func Session(name, value string) Middleware {
	return func(next http.Handler) http.Handler {
		if value == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(name)
			if err != nil || subtle.ConstantTimeCompare([]byte(c.Value), []byte(value)) != 1 {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			markSession(w)
			ctx := ctxutil.WithSession(r.Context(), c.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
		"success": false,
		"message": message,
	})
}
