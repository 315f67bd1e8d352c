package jobseeker

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	defaultcatalog "github.com/aanand-mishra/careerpath/internal/catalog"
	"github.com/aanand-mishra/careerpath/internal/http/handlers/handlertest"
	"github.com/aanand-mishra/careerpath/internal/session"
	"github.com/aanand-mishra/careerpath/internal/storage/sqlite"
	"github.com/aanand-mishra/careerpath/internal/types"
)

func newRouter(t *testing.T, store *session.Store) http.Handler {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Seed(defaultcatalog.Default()))

	r := chi.NewRouter()
	r.Use(handlertest.Provide(store))
	r.Post("/job-seeker/skills", AddSkill())
	r.Put("/job-seeker/skills", ReplaceSkills())
	r.Put("/job-seeker/resume", UpdateResume())
	r.Patch("/job-seeker/details", UpdateDetails())
	r.Get("/job-seeker/jobs", Jobs(db))
	r.Get("/job-seeker/companies", Companies(db))
	r.Get("/job-seeker/recommendations", Recommendations(db))
	return r
}

func TestSkillsAndResume(t *testing.T) {
	store := session.New()
	store.Login("a@x.com", "pw", types.TrackJobSeeker)
	h := newRouter(t, store)

	rec := handlertest.Do(t, h, http.MethodPost, "/job-seeker/skills", types.ItemRequest{Value: "SQL"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Skill added!", handlertest.Mutation(t, rec).Message)

	rec = handlertest.Do(t, h, http.MethodPut, "/job-seeker/resume", types.TextRequest{Text: "5y backend"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Resume updated!", handlertest.Mutation(t, rec).Message)

	snap := store.Snapshot()
	assert.Equal(t, []string{"SQL"}, snap.JobSeekerSkills)
	assert.Equal(t, "5y backend", snap.JobSeekerResume)
	assert.Empty(t, snap.StudentSkills)
}

func TestUpdateDetailsMergesFields(t *testing.T) {
	store := session.New()
	h := newRouter(t, store)

	rec := handlertest.Do(t, h, http.MethodPatch, "/job-seeker/details",
		`{"marks10th":"92%","githubLink":"https://github.com/ann"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Details updated!", handlertest.Mutation(t, rec).Message)

	rec = handlertest.Do(t, h, http.MethodPatch, "/job-seeker/details", `{"marks12th":"88%"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	snap := store.Snapshot()
	assert.Equal(t, "92%", snap.Marks10)
	assert.Equal(t, "88%", snap.Marks12)
	assert.Equal(t, "https://github.com/ann", snap.GitHub)
	assert.Empty(t, snap.LinkedIn)
}

func TestListings(t *testing.T) {
	h := newRouter(t, session.New())
	want := defaultcatalog.Default()

	rec := handlertest.Do(t, h, http.MethodGet, "/job-seeker/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var jobs []types.JobRole
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&jobs))
	assert.Equal(t, want.JobRoles, jobs)

	rec = handlertest.Do(t, h, http.MethodGet, "/job-seeker/recommendations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var recs []types.CareerRecommendation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&recs))
	assert.Equal(t, want.CareerRecommendations, recs)

	rec = handlertest.Do(t, h, http.MethodGet, "/job-seeker/companies", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
