// Package profile contains the profile page handlers: the edit form, the
// hobby and skill quick-add inputs, and the picture upload.
package profile

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/careerpath/internal/dashboard"
	"github.com/aanand-mishra/careerpath/internal/document"
	"github.com/aanand-mishra/careerpath/internal/forms"
	"github.com/aanand-mishra/careerpath/internal/http/handlers/listedit"
	"github.com/aanand-mishra/careerpath/internal/metrics"
	"github.com/aanand-mishra/careerpath/internal/session"
	"github.com/aanand-mishra/careerpath/internal/types"
	"github.com/aanand-mishra/careerpath/internal/utils/response"
	"github.com/aanand-mishra/careerpath/internal/utils/upload"
)

// Form handles GET /profile: the edit form pre-filled from the session,
// with hobbies and skills joined back into comma-separated text.
func Form() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := session.MustFromContext(r.Context())
		_ = response.WriteJSON(w, http.StatusOK, dashboard.Form(store.Snapshot()))
	}
}

// Update handles PATCH /profile.
//
// Only the fields present in the body are changed. Hobbies and skills are
// comma-separated text and are split into trimmed, non-empty entries:
//
//	{ "name": "Ann", "skills": "Go, SQL, " }   →   skills = ["Go", "SQL"]
func Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form types.ProfileForm
		if !response.ReadJSON(w, r, &form) {
			return
		}

		patch := types.ProfilePatch{Name: form.Name, Email: form.Email}
		if form.Hobbies != nil {
			patch.Hobbies = forms.SplitList(*form.Hobbies)
		}
		if form.Skills != nil {
			patch.Skills = forms.SplitList(*form.Skills)
		}

		store := session.MustFromContext(r.Context())
		store.UpdateProfile(patch)
		slog.Info("profile updated")

		response.WriteMutation(w, "Profile updated successfully!", store.Snapshot())
	}
}

// AddHobby handles POST /profile/hobbies.
func AddHobby() http.HandlerFunc {
	return listedit.Append("Hobby added!",
		func(s types.Session) []string { return s.Profile.Hobbies },
		func(st *session.Store, items []string) { st.UpdateProfile(types.ProfilePatch{Hobbies: items}) })
}

// AddSkill handles POST /profile/skills.
func AddSkill() http.HandlerFunc {
	return listedit.Append("Skill added!",
		func(s types.Session) []string { return s.Profile.Skills },
		func(st *session.Store, items []string) { st.UpdateProfile(types.ProfilePatch{Skills: items}) })
}

// Picture handles PUT /profile/picture, a multipart upload of an image
// under the "file" field. Anything that is not an image is rejected.
func Picture(maxBytes int64, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := upload.Read(w, r, maxBytes)
		if err != nil {
			response.WriteError(w, upload.Status(err), err)
			return
		}
		m.ObserveUpload("picture", len(f.Data))

		ref, err := document.PictureRef(f.Data)
		if err != nil {
			response.WriteError(w, http.StatusBadRequest, err)
			return
		}

		store := session.MustFromContext(r.Context())
		store.UpdateProfile(types.ProfilePatch{PictureRef: &ref})
		slog.Info("profile picture updated", slog.String("file", f.Name), slog.Int("bytes", len(f.Data)))

		response.WriteMutation(w, "Profile picture updated!", store.Snapshot())
	}
}
