// Package api holds the pieces shared by every handler package: bearer-token
// authentication and error-to-status mapping.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/contasmart/contasmart/internal/validation"
)

// Verifier checks a bearer token and returns the user id it carries.
type Verifier interface {
	Verify(token string) (int64, error)
}

type ctxKey int

const userKey ctxKey = iota

// RequireAuth rejects requests without a valid bearer token and stashes the
// authenticated user id in the request context.
func RequireAuth(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			userID, err := v.Verify(token)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, userID)))
		})
	}
}

// UserID returns the authenticated user id, or zero outside RequireAuth.
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userKey).(int64)
	return id
}

// Err writes err with the right status. Invalid input is the caller's fault;
// anything else is reported as an internal error without leaking details.
func Err(w http.ResponseWriter, err error) {
	if validation.Is(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slog.Error("request failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
