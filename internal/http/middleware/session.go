// Package middleware holds the HTTP middleware that binds each request to
// its session store.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/careerpath/internal/session"
	"github.com/aanand-mishra/careerpath/internal/utils/response"
)

// ErrNotAuthenticated is returned to requests that need a signed-in session.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session resolves the session cookie to a store of reg and provides it on
// the request context. A request without a cookie, or with one the
// registry no longer knows, gets a fresh session and a new cookie.
func Session(reg *session.Registry, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var store *session.Store
			if c, err := r.Cookie(cookieName); err == nil {
				store, _ = reg.Get(c.Value)
			}

			if store == nil {
				var id string
				id, store = reg.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				slog.Debug("session created", slog.String("id", id))
			}

			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), store)))
		})
	}
}

// RequireAuthenticated rejects requests whose session is not signed in.
// It must run inside Session.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store := session.MustFromContext(r.Context())
		if store.State() != session.Authenticated {
			response.WriteError(w, http.StatusUnauthorized, ErrNotAuthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}
