// Package auth contains the sign-in handlers. There is no credential
// check anywhere: a request that passes validation signs the session in.
//
// Every handler here works on the session store the Session middleware
// put on the request context, so none of them take dependencies:
//
//	r.Post("/auth/{track}/login", auth.Login())
package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aanand-mishra/careerpath/internal/session"
	"github.com/aanand-mishra/careerpath/internal/types"
	"github.com/aanand-mishra/careerpath/internal/utils/response"
)

// trackParam reads and checks the {track} path segment. On failure it has
// written a 400 response.
func trackParam(w http.ResponseWriter, r *http.Request) (types.Track, bool) {
	track, err := types.ParseTrack(chi.URLParam(r, "track"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err)
		return types.TrackNone, false
	}
	return track, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Login handles POST /auth/{track}/login
//
// Request body:
//
//	{ "email": "ann@example.com", "password": "secret" }
//
// The display name becomes the part of the email before '@'.
// ─────────────────────────────────────────────────────────────────────────────
func Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		track, ok := trackParam(w, r)
		if !ok {
			return
		}

		var req types.LoginRequest
		if !response.ReadJSON(w, r, &req) {
			return
		}

		store := session.MustFromContext(r.Context())
		store.Login(req.Email, req.Password, track)
		slog.Info("user logged in", slog.String("track", string(track)))

		response.WriteMutation(w, "Logged in successfully!", store.Snapshot())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Signup handles POST /auth/{track}/signup
//
// Request body:
//
//	{ "email": "ann@example.com", "password": "secret", "name": "Ann" }
//
// ─────────────────────────────────────────────────────────────────────────────
func Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		track, ok := trackParam(w, r)
		if !ok {
			return
		}

		var req types.SignupRequest
		if !response.ReadJSON(w, r, &req) {
			return
		}

		store := session.MustFromContext(r.Context())
		store.Signup(req.Email, req.Password, req.Name, track)
		slog.Info("user signed up", slog.String("track", string(track)))

		response.WriteMutation(w, "Account created successfully!", store.Snapshot())
	}
}

// Google handles POST /auth/{track}/google. It signs in with the demo
// identity; no body is read.
func Google() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		track, ok := trackParam(w, r)
		if !ok {
			return
		}

		store := session.MustFromContext(r.Context())
		store.LoginWithGoogle(track)
		slog.Info("user logged in with google", slog.String("track", string(track)))

		response.WriteMutation(w, "Logged in with Google!", store.Snapshot())
	}
}

// Logout handles POST /auth/logout. Logging out an already signed-out
// session is allowed and still returns the default snapshot.
func Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := session.MustFromContext(r.Context())
		store.Logout()
		slog.Info("user logged out")

		response.WriteMutation(w, "Logged out", store.Snapshot())
	}
}

// Snapshot handles GET /session.
func Snapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := session.MustFromContext(r.Context())
		_ = response.WriteJSON(w, http.StatusOK, store.Snapshot())
	}
}
