package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nigam11/skillhub-front/internal/client/client"
	"github.com/Nigam11/skillhub-front/internal/client/config"
	"github.com/Nigam11/skillhub-front/internal/client/models"
	"github.com/Nigam11/skillhub-front/internal/client/services"
	"github.com/Nigam11/skillhub-front/internal/client/session"
)

type fakeAuth struct {
	loginResp  *models.LoginResponse
	loginErr   error
	loginEmail string
	signupErr  error
	signup     models.SignupForm
	resetErr   error
	resetEmail string
	confirmErr error
	resetToken string
	closed     bool
}

func (f *fakeAuth) Login(_ context.Context, email string, _ []byte) (*models.LoginResponse, error) {
	f.loginEmail = email
	return f.loginResp, f.loginErr
}
func (f *fakeAuth) Signup(_ context.Context, form models.SignupForm) error {
	f.signup = form
	f.signup.Password = append([]byte(nil), form.Password...)
	f.signup.ConfirmPassword = append([]byte(nil), form.ConfirmPassword...)
	return f.signupErr
}
func (f *fakeAuth) RequestPasswordReset(_ context.Context, email string) error {
	f.resetEmail = email
	return f.resetErr
}
func (f *fakeAuth) ConfirmPasswordReset(_ context.Context, token string, _ []byte) error {
	f.resetToken = token
	return f.confirmErr
}
func (f *fakeAuth) Close(context.Context) error { f.closed = true; return nil }

type fakeProfiles struct {
	me         *models.Profile
	meErr      error
	public     map[int64]*models.Profile
	update     *models.ProfileUpdate
	image      *models.Image
	updateErr  error
	removedPic bool
}

func (f *fakeProfiles) Me(context.Context) (*models.Profile, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.me, nil
}
func (f *fakeProfiles) Update(_ context.Context, u models.ProfileUpdate, img *models.Image) error {
	f.update, f.image = &u, img
	return f.updateErr
}
func (f *fakeProfiles) DeleteProfilePicture(context.Context) error {
	f.removedPic = true
	return nil
}
func (f *fakeProfiles) Public(_ context.Context, id int64) (*models.Profile, error) {
	if p, ok := f.public[id]; ok {
		return p, nil
	}
	return nil, client.ErrNotFound
}

type fakeResources struct {
	sections  []services.Section
	found     []models.Resource
	findErr   error
	suggest   []string
	saved     []models.Resource
	savedErr  error
	resource  *models.Resource
	shared    *models.Resource
	updated   *models.Resource
	deleted   int64
	unsaved   int64
	shareErr  error
	lastQuery string
}

func (f *fakeResources) Find(_ context.Context, kw string) ([]models.Resource, error) {
	f.lastQuery = kw
	return f.found, f.findErr
}
func (f *fakeResources) Search(_ context.Context, t string) ([]models.Resource, error) {
	return f.Find(context.Background(), t)
}
func (f *fakeResources) ByPlatform(_ context.Context, p string) ([]models.Resource, error) {
	return f.Find(context.Background(), p)
}
func (f *fakeResources) Suggest(_ context.Context, in string) ([]string, error) {
	f.lastQuery = in
	return f.suggest, nil
}
func (f *fakeResources) Dashboard(context.Context) []services.Section { return f.sections }
func (f *fakeResources) Get(_ context.Context, id int64) (*models.Resource, error) {
	if f.resource == nil || f.resource.ID != id {
		return nil, client.ErrNotFound
	}
	r := *f.resource
	return &r, nil
}
func (f *fakeResources) Share(_ context.Context, r models.Resource, _ *models.Image) error {
	f.shared = &r
	return f.shareErr
}
func (f *fakeResources) Update(_ context.Context, _ int64, r models.Resource) error {
	f.updated = &r
	return nil
}
func (f *fakeResources) Delete(_ context.Context, id int64) error { f.deleted = id; return nil }
func (f *fakeResources) Saved(context.Context) ([]models.Resource, error) {
	return f.saved, f.savedErr
}
func (f *fakeResources) Unsave(_ context.Context, id int64) error { f.unsaved = id; return nil }

type harness struct {
	app       *App
	out       *bytes.Buffer
	gate      *session.Gate
	auth      *fakeAuth
	profiles  *fakeProfiles
	resources *fakeResources
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	h := &harness{
		out:  &bytes.Buffer{},
		auth: &fakeAuth{},
		profiles: &fakeProfiles{
			me: &models.Profile{User: models.User{ID: 1, Name: "Alice", Email: "alice@example.org"}},
		},
		resources: &fakeResources{},
	}
	h.gate = session.NewGate(session.NewSQLStore(db), h.profiles, nil)
	h.app = newApp(&config.Config{ServerBaseURL: "http://api.test"}, nil, h.gate, h.auth, h.profiles, h.resources)
	h.app.out = h.out
	h.app.reader = bufio.NewReader(strings.NewReader(""))
	t.Cleanup(h.app.unsubscribe)
	return h
}

// login signs the harness user in without prompting.
func (h *harness) login(t *testing.T) {
	t.Helper()
	_, err := h.gate.CompleteLogin(context.Background(), "tok-1", h.profiles.me.User)
	require.NoError(t, err)
	h.app.drainEvents(context.Background())
	h.out.Reset()
}

// stubAnswers feeds the interactive helpers from answers, in order. For
// confirm "y" means yes; for images a non-empty answer is a file name.
func stubAnswers(t *testing.T, answers ...string) {
	t.Helper()
	origST, origGP, origML, origIM, origCF := getSimpleText, getPassword, getMultiline, getImage, confirm
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline, getImage, confirm = origST, origGP, origML, origIM, origCF
	})

	next := func() (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}

	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return next() }
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) { return next() }
	getPassword = func(*bufio.Reader, string, io.Writer) ([]byte, error) {
		s, err := next()
		return []byte(s), err
	}
	confirm = func(*bufio.Reader, string, io.Writer) (bool, error) {
		s, err := next()
		return s == "y", err
	}
	getImage = func(*bufio.Reader, string, io.Writer) (*models.Image, error) {
		s, err := next()
		if err != nil || s == "" {
			return nil, err
		}
		return &models.Image{Name: s, Data: []byte("img")}, nil
	}
}
