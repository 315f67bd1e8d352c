// Package session implements the user session store: the single source of
// truth for one client's portal state.
//
// A Store holds exactly one types.Session record. Every mutator applies its
// change atomically, bumps the store version, and then publishes the new
// snapshot to every registered listener. No mutator can fail and none
// performs I/O; turning an uploaded file into text is the caller's job.
//
// Stores are created explicitly (New, or Registry.Create) and handed to
// consumers through a context.Context provider boundary (see context.go).
package session

import (
	"slices"
	"strings"
	"sync"

	"github.com/aanand-mishra/careerpath/internal/types"
)

// Demo identity used by LoginWithGoogle. There is no OAuth flow.
const (
	GoogleDemoEmail = "user@gmail.com"
	GoogleDemoName  = "Demo User"
)

// Operation names carried on every Change.
const (
	OpLogin                  = "login"
	OpSignup                 = "signup"
	OpLoginWithGoogle        = "login_with_google"
	OpLogout                 = "logout"
	OpUpdateProfile          = "update_profile"
	OpUploadSyllabus         = "upload_syllabus"
	OpUploadResume           = "upload_resume"
	OpUpdateStudentSkills    = "update_student_skills"
	OpUpdateStudentSyllabus  = "update_student_syllabus"
	OpUpdateStudentResume    = "update_student_resume"
	OpUpdateJobSeekerSkills  = "update_job_seeker_skills"
	OpUpdateJobSeekerResume  = "update_job_seeker_resume"
	OpUpdateJobSeekerDetails = "update_job_seeker_details"
)

// State is the authentication state machine of a store.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Change is what listeners receive after a mutation.
type Change struct {
	Op      string
	Version uint64
	Session types.Session
}

// Listener observes store changes. It is called outside the store lock and
// may read from the store. It must not mutate the same store.
type Listener func(Change)

type subscription struct {
	id uint64
	fn Listener
}

// Store is the session store. The zero value is not usable; call New.
type Store struct {
	mu      sync.RWMutex
	state   types.Session
	version uint64

	subMu  sync.Mutex
	subs   []subscription
	nextID uint64

	// notifyMu keeps listener calls in version order when mutations
	// arrive from several goroutines.
	notifyMu sync.Mutex
}

// New returns a store holding the default record.
func New() *Store {
	return &Store{state: types.DefaultSession()}
}

// Snapshot returns a deep copy of the current record.
func (s *Store) Snapshot() types.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Version returns the number of mutations applied so far.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Current returns the snapshot together with the version it belongs to.
// Op is empty.
func (s *Store) Current() Change {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Change{Version: s.version, Session: s.state.Clone()}
}

// State reports whether the session is authenticated.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Authenticated {
		return Authenticated
	}
	return Unauthenticated
}

// Subscribe registers l and returns a function that removes it.
// Listeners are notified in registration order.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	if l == nil {
		return func() {}
	}

	s.subMu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: l})
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool {
				return sub.id == id
			})
		})
	}
}

// apply runs fn against the record under the write lock and then notifies
// listeners with a copy of the result.
func (s *Store) apply(op string, fn func(*types.Session)) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	fn(&s.state)
	s.version++
	change := Change{Op: op, Version: s.version, Session: s.state.Clone()}
	s.mu.Unlock()

	s.subMu.Lock()
	subs := slices.Clone(s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		// Each listener gets its own copy so one cannot corrupt another's view.
		sub.fn(Change{Op: change.Op, Version: change.Version, Session: change.Session.Clone()})
	}
}

// NameFromEmail returns the part of email before its first '@', or the
// whole string when there is none.
func NameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}

// Login marks the session authenticated on track. The password is ignored.
func (s *Store) Login(email, password string, track types.Track) {
	s.apply(OpLogin, func(st *types.Session) {
		st.Authenticated = true
		st.Track = track
		st.Profile.Email = email
		st.Profile.Name = NameFromEmail(email)
	})
}

// Signup is Login with an explicit display name.
func (s *Store) Signup(email, password, name string, track types.Track) {
	s.apply(OpSignup, func(st *types.Session) {
		st.Authenticated = true
		st.Track = track
		st.Profile.Email = email
		st.Profile.Name = name
	})
}

// LoginWithGoogle signs in with the fixed demo identity.
func (s *Store) LoginWithGoogle(track types.Track) {
	s.apply(OpLoginWithGoogle, func(st *types.Session) {
		st.Authenticated = true
		st.Track = track
		st.Profile.Email = GoogleDemoEmail
		st.Profile.Name = GoogleDemoName
	})
}

// Logout resets the whole record to its default state.
func (s *Store) Logout() {
	s.apply(OpLogout, func(st *types.Session) {
		*st = types.DefaultSession()
	})
}

// Reset is Logout under its lifecycle name.
func (s *Store) Reset() { s.Logout() }

// UpdateProfile merges the set fields of p into the profile.
func (s *Store) UpdateProfile(p types.ProfilePatch) {
	s.apply(OpUpdateProfile, func(st *types.Session) {
		if p.Name != nil {
			st.Profile.Name = *p.Name
		}
		if p.Email != nil {
			st.Profile.Email = *p.Email
		}
		if p.Hobbies != nil {
			st.Profile.Hobbies = slices.Clone(p.Hobbies)
		}
		if p.Skills != nil {
			st.Profile.Skills = slices.Clone(p.Skills)
		}
		if p.PictureRef != nil {
			st.Profile.PictureRef = *p.PictureRef
		}
	})
}

// UploadSyllabus replaces the syllabus document.
func (s *Store) UploadSyllabus(fileName, content string) {
	s.apply(OpUploadSyllabus, func(st *types.Session) {
		st.Syllabus = &types.Document{FileName: fileName, Content: content}
	})
}

// UploadResume replaces the resume document.
func (s *Store) UploadResume(fileName, content string) {
	s.apply(OpUploadResume, func(st *types.Session) {
		st.Resume = &types.Document{FileName: fileName, Content: content}
	})
}

// cloneList copies items. A nil list becomes empty so snapshots always
// encode sequences as [].
func cloneList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return slices.Clone(items)
}

func (s *Store) UpdateStudentSkills(skills []string) {
	s.apply(OpUpdateStudentSkills, func(st *types.Session) {
		st.StudentSkills = cloneList(skills)
	})
}

func (s *Store) UpdateStudentSyllabus(topics []string) {
	s.apply(OpUpdateStudentSyllabus, func(st *types.Session) {
		st.StudentSyllabus = cloneList(topics)
	})
}

func (s *Store) UpdateStudentResume(text string) {
	s.apply(OpUpdateStudentResume, func(st *types.Session) {
		st.StudentResume = text
	})
}

func (s *Store) UpdateJobSeekerSkills(skills []string) {
	s.apply(OpUpdateJobSeekerSkills, func(st *types.Session) {
		st.JobSeekerSkills = cloneList(skills)
	})
}

func (s *Store) UpdateJobSeekerResume(text string) {
	s.apply(OpUpdateJobSeekerResume, func(st *types.Session) {
		st.JobSeekerResume = text
	})
}

// UpdateJobSeekerDetails merges the set fields of d.
func (s *Store) UpdateJobSeekerDetails(d types.JobSeekerDetailsPatch) {
	s.apply(OpUpdateJobSeekerDetails, func(st *types.Session) {
		if d.Marks10 != nil {
			st.Marks10 = *d.Marks10
		}
		if d.Marks12 != nil {
			st.Marks12 = *d.Marks12
		}
		if d.LinkedIn != nil {
			st.LinkedIn = *d.LinkedIn
		}
		if d.GitHub != nil {
			st.GitHub = *d.GitHub
		}
	})
}
