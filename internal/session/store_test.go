package session

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/careerpath/internal/forms"
	"github.com/aanand-mishra/careerpath/internal/types"
)

func ptr[T any](v T) *T { return &v }

var tracks = []types.Track{types.TrackStudent, types.TrackJobSeeker}

func TestNewStoreHoldsDefaultRecord(t *testing.T) {
	s := New()

	assert.Equal(t, types.DefaultSession(), s.Snapshot())
	assert.Equal(t, Unauthenticated, s.State())
	assert.Equal(t, uint64(0), s.Version())
}

func TestLoginDerivesNameFromEmail(t *testing.T) {
	for _, track := range tracks {
		t.Run(string(track), func(t *testing.T) {
			s := New()
			s.Login("jane.doe@example.com", "whatever", track)

			got := s.Snapshot()
			assert.True(t, got.Authenticated)
			assert.Equal(t, track, got.Track)
			assert.Equal(t, "jane.doe@example.com", got.Profile.Email)
			assert.Equal(t, "jane.doe", got.Profile.Name)
			assert.Equal(t, Authenticated, s.State())
		})
	}
}

func TestNameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"a@x.com", "a"},
		{"first@second@x.com", "first"},
		{"no-at-sign", "no-at-sign"},
		{"@x.com", ""},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NameFromEmail(tc.email), tc.email)
	}
}

func TestLoginIgnoresPassword(t *testing.T) {
	a, b := New(), New()
	a.Login("a@x.com", "", types.TrackStudent)
	b.Login("a@x.com", "correct horse battery staple", types.TrackStudent)

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestSignupKeepsNameVerbatim(t *testing.T) {
	for _, track := range tracks {
		s := New()
		s.Signup("a@x.com", "pw", "Alice", track)

		got := s.Snapshot()
		assert.True(t, got.Authenticated)
		assert.Equal(t, track, got.Track)
		assert.Equal(t, "Alice", got.Profile.Name)
		assert.Equal(t, "a@x.com", got.Profile.Email)
	}
}

func TestLoginWithGoogleUsesDemoIdentity(t *testing.T) {
	for _, track := range tracks {
		s := New()
		s.LoginWithGoogle(track)

		got := s.Snapshot()
		assert.True(t, got.Authenticated)
		assert.Equal(t, track, got.Track)
		assert.Equal(t, "user@gmail.com", got.Profile.Email)
		assert.Equal(t, "Demo User", got.Profile.Name)
	}
}

func TestLoginKeepsOtherProfileFields(t *testing.T) {
	s := New()
	s.UpdateProfile(types.ProfilePatch{Hobbies: []string{"chess"}, PictureRef: ptr("data:image/png;base64,AA==")})
	s.Login("bob@x.com", "pw", types.TrackJobSeeker)

	got := s.Snapshot()
	assert.Equal(t, []string{"chess"}, got.Profile.Hobbies)
	assert.Equal(t, "data:image/png;base64,AA==", got.Profile.PictureRef)
}

func TestLogoutRestoresDefaultRecord(t *testing.T) {
	s := New()
	s.Signup("a@x.com", "pw", "Ann", types.TrackStudent)
	s.UpdateProfile(types.ProfilePatch{Skills: []string{"Go"}, Hobbies: []string{"chess"}, PictureRef: ptr("pic")})
	s.UploadSyllabus("s.txt", "topics")
	s.UploadResume("r.txt", "resume")
	s.UpdateStudentSkills([]string{"Python"})
	s.UpdateStudentSyllabus([]string{"Graphs"})
	s.UpdateStudentResume("summary")
	s.UpdateJobSeekerSkills([]string{"SQL"})
	s.UpdateJobSeekerResume("cv")
	s.UpdateJobSeekerDetails(types.JobSeekerDetailsPatch{
		Marks10:  ptr("90"),
		Marks12:  ptr("85"),
		LinkedIn: ptr("https://linkedin.com/in/ann"),
		GitHub:   ptr("https://github.com/ann"),
	})

	s.Logout()
	assert.Equal(t, types.DefaultSession(), s.Snapshot())
	assert.Equal(t, Unauthenticated, s.State())

	// Idempotent.
	s.Logout()
	assert.Equal(t, types.DefaultSession(), s.Snapshot())
}

func TestResetIsLogout(t *testing.T) {
	s := New()
	s.LoginWithGoogle(types.TrackStudent)
	s.Reset()
	assert.Equal(t, types.DefaultSession(), s.Snapshot())
}

func TestTrackIsNoneIffUnauthenticated(t *testing.T) {
	s := New()
	check := func() {
		got := s.Snapshot()
		assert.Equal(t, !got.Authenticated, got.Track == types.TrackNone)
	}

	check()
	s.Login("a@x.com", "pw", types.TrackStudent)
	check()
	s.UpdateStudentSkills([]string{"x"})
	check()
	s.Logout()
	check()
	s.Signup("a@x.com", "pw", "A", types.TrackJobSeeker)
	check()
	s.LoginWithGoogle(types.TrackStudent)
	check()
}

func TestUpdateProfileMergesFieldWise(t *testing.T) {
	s := New()
	s.UpdateProfile(types.ProfilePatch{Skills: []string{"x"}})
	s.UpdateProfile(types.ProfilePatch{Name: ptr("Bob")})

	got := s.Snapshot()
	assert.Equal(t, []string{"x"}, got.Profile.Skills)
	assert.Equal(t, "Bob", got.Profile.Name)
	assert.Equal(t, []string{}, got.Profile.Hobbies)
}

func TestUpdateProfileEmptySliceClears(t *testing.T) {
	s := New()
	s.UpdateProfile(types.ProfilePatch{Hobbies: []string{"chess"}})
	s.UpdateProfile(types.ProfilePatch{Hobbies: []string{}})

	assert.Equal(t, []string{}, s.Snapshot().Profile.Hobbies)
}

func TestUploadReplacesWholesale(t *testing.T) {
	s := New()
	s.UploadResume("r.txt", "hello")
	assert.Equal(t, &types.Document{FileName: "r.txt", Content: "hello"}, s.Snapshot().Resume)

	s.UploadResume("r2.txt", "bye")
	assert.Equal(t, &types.Document{FileName: "r2.txt", Content: "bye"}, s.Snapshot().Resume)

	s.UploadSyllabus("s.txt", "topics")
	got := s.Snapshot()
	assert.Equal(t, &types.Document{FileName: "s.txt", Content: "topics"}, got.Syllabus)
	assert.Equal(t, "r2.txt", got.Resume.FileName)
}

func TestTrackListsAreIndependent(t *testing.T) {
	s := New()
	s.UpdateProfile(types.ProfilePatch{Skills: []string{"Go"}})
	s.UpdateStudentSkills([]string{"Python", "Python"})
	s.UpdateJobSeekerSkills([]string{"SQL"})

	got := s.Snapshot()
	assert.Equal(t, []string{"Go"}, got.Profile.Skills)
	assert.Equal(t, []string{"Python", "Python"}, got.StudentSkills)
	assert.Equal(t, []string{"SQL"}, got.JobSeekerSkills)
}

func TestUpdateTextFieldsReplace(t *testing.T) {
	s := New()
	s.UpdateStudentSyllabus([]string{"Arrays", "Trees"})
	s.UpdateStudentResume("first")
	s.UpdateStudentResume("second")
	s.UpdateJobSeekerResume("cv")

	got := s.Snapshot()
	assert.Equal(t, []string{"Arrays", "Trees"}, got.StudentSyllabus)
	assert.Equal(t, "second", got.StudentResume)
	assert.Equal(t, "cv", got.JobSeekerResume)
}

func TestUpdateJobSeekerDetailsMerges(t *testing.T) {
	s := New()
	s.UpdateJobSeekerDetails(types.JobSeekerDetailsPatch{Marks10: ptr("91"), GitHub: ptr("gh")})
	s.UpdateJobSeekerDetails(types.JobSeekerDetailsPatch{Marks12: ptr("88")})

	got := s.Snapshot()
	assert.Equal(t, "91", got.Marks10)
	assert.Equal(t, "88", got.Marks12)
	assert.Equal(t, "", got.LinkedIn)
	assert.Equal(t, "gh", got.GitHub)
}

func TestBlankSkillAppendIsNoOp(t *testing.T) {
	s := New()
	s.UpdateStudentSkills([]string{"Go"})

	for _, v := range []string{"", "   ", "\t\n"} {
		if next, ok := forms.AppendTrimmed(s.Snapshot().StudentSkills, v); ok {
			s.UpdateStudentSkills(next)
		}
	}
	assert.Len(t, s.Snapshot().StudentSkills, 1)

	next, ok := forms.AppendTrimmed(s.Snapshot().StudentSkills, " Rust ")
	require.True(t, ok)
	s.UpdateStudentSkills(next)
	assert.Equal(t, []string{"Go", "Rust"}, s.Snapshot().StudentSkills)
}

func TestSignupSkillsLogoutScenario(t *testing.T) {
	s := New()
	initial := s.Snapshot()

	s.Signup("a@x.com", "pw", "Ann", types.TrackStudent)
	s.UpdateStudentSkills([]string{"Python"})
	s.Logout()

	assert.Equal(t, initial, s.Snapshot())
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := New()
	input := []string{"Go", "SQL"}
	s.UpdateStudentSkills(input)
	s.UploadResume("r.txt", "hello")

	// Mutating the input after the call must not leak into the store.
	input[0] = "changed"

	snap := s.Snapshot()
	snap.StudentSkills[1] = "changed"
	snap.Resume.Content = "changed"

	got := s.Snapshot()
	assert.Equal(t, []string{"Go", "SQL"}, got.StudentSkills)
	assert.Equal(t, "hello", got.Resume.Content)
}

func TestSubscribersSeeEveryChangeInOrder(t *testing.T) {
	s := New()

	var order []string
	var changes []Change
	s.Subscribe(func(c Change) {
		order = append(order, "first")
		changes = append(changes, c)
	})
	s.Subscribe(func(c Change) { order = append(order, "second") })

	s.Login("a@x.com", "pw", types.TrackStudent)
	s.UpdateStudentResume("text")

	require.Len(t, changes, 2)
	assert.Equal(t, OpLogin, changes[0].Op)
	assert.Equal(t, uint64(1), changes[0].Version)
	assert.Equal(t, "a", changes[0].Session.Profile.Name)
	assert.Equal(t, OpUpdateStudentResume, changes[1].Op)
	assert.Equal(t, uint64(2), changes[1].Version)
	assert.Equal(t, "text", changes[1].Session.StudentResume)
	assert.Equal(t, []string{"first", "second", "first", "second"}, order)
}

func TestListenerMayReadStore(t *testing.T) {
	s := New()
	var seen types.Session
	s.Subscribe(func(Change) { seen = s.Snapshot() })

	s.UpdateJobSeekerResume("cv")
	assert.Equal(t, "cv", seen.JobSeekerResume)
}

func TestListenerCannotCorruptStore(t *testing.T) {
	s := New()
	s.Subscribe(func(c Change) { c.Session.StudentSkills[0] = "corrupted" })

	s.UpdateStudentSkills([]string{"Go"})
	assert.Equal(t, []string{"Go"}, s.Snapshot().StudentSkills)
}

func TestUnsubscribe(t *testing.T) {
	s := New()
	calls := 0
	unsubscribe := s.Subscribe(func(Change) { calls++ })

	s.UpdateStudentResume("a")
	unsubscribe()
	unsubscribe()
	s.UpdateStudentResume("b")

	assert.Equal(t, 1, calls)
}

func TestNilListenerIsIgnored(t *testing.T) {
	s := New()
	unsubscribe := s.Subscribe(nil)
	unsubscribe()

	assert.NotPanics(t, func() { s.Logout() })
}

func TestConcurrentMutationsNotifyInVersionOrder(t *testing.T) {
	s := New()

	var mu sync.Mutex
	var versions []uint64
	s.Subscribe(func(c Change) {
		mu.Lock()
		versions = append(versions, c.Version)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.UpdateStudentResume("x")
		}()
	}
	wg.Wait()

	require.Len(t, versions, 50)
	for i, v := range versions {
		assert.Equal(t, uint64(i+1), v)
	}
	assert.Equal(t, uint64(50), s.Version())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "unauthenticated", Unauthenticated.String())
}

func TestTrackListsNilBecomesEmpty(t *testing.T) {
	s := New()
	s.UpdateStudentSkills([]string{"Go"})
	s.UpdateStudentSkills(nil)
	s.UpdateStudentSyllabus(nil)
	s.UpdateJobSeekerSkills(nil)

	snap := s.Snapshot()
	assert.Equal(t, []string{}, snap.StudentSkills)
	assert.Equal(t, []string{}, snap.StudentSyllabus)
	assert.Equal(t, []string{}, snap.JobSeekerSkills)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"studentSkills":[]`)
	assert.Contains(t, string(raw), `"studentSyllabus":[]`)
	assert.Contains(t, string(raw), `"jobSeekerSkills":[]`)
}
