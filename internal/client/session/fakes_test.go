package session

import (
	"context"
	"errors"
	"sync"

	"github.com/Nigam11/skillhub-front/internal/client/models"
)

type memStore struct {
	mu       sync.Mutex
	token    string
	user     *models.User
	redirect string
	fail     error
	// afterLoad runs once the snapshot is read, outside the lock.
	afterLoad func()
}

func (m *memStore) Load(context.Context) (Snapshot, error) {
	m.mu.Lock()
	snap, err := Snapshot{Token: m.token, User: m.user, Redirect: m.redirect}, m.fail
	hook := m.afterLoad
	m.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (m *memStore) storedToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memStore) SaveLogin(_ context.Context, token string, user models.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return "", m.fail
	}
	m.token = token
	m.user = &user
	r := m.redirect
	m.redirect = ""
	return r, nil
}

func (m *memStore) SaveUser(_ context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
	return m.fail
}

func (m *memStore) SetRedirect(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.redirect = path
	return nil
}

func (m *memStore) ClearRedirect(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.redirect = ""
	return m.fail
}

func (m *memStore) ClearCredential(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	return m.fail
}

func (m *memStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	m.redirect = ""
	return m.fail
}

type fakeNav struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (n *fakeNav) Navigate(_ context.Context, path string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
	return n.err
}

func (n *fakeNav) visited() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}

type fakeUsers struct {
	me func(ctx context.Context) (*models.Profile, error)
}

func (f *fakeUsers) Me(ctx context.Context) (*models.Profile, error) {
	if f.me == nil {
		return nil, errors.New("unexpected Me call")
	}
	return f.me(ctx)
}
