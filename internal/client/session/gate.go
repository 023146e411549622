package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Nigam11/skillhub-front/internal/client/credential"
	"github.com/Nigam11/skillhub-front/internal/client/models"
	"github.com/Nigam11/skillhub-front/internal/client/routes"
	"github.com/Nigam11/skillhub-front/internal/logging"
)

var (
	ErrNotConfirmed      = errors.New("logout not confirmed")
	ErrInvalidCredential = errors.New("invalid credential")
)

const subscriberBuffer = 16

// Navigator opens a route. The CLI router implements it.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// UserFetcher loads the user the credential belongs to.
type UserFetcher interface {
	Me(ctx context.Context) (*models.Profile, error)
}

type Gate struct {
	store Store
	users UserFetcher
	log   logging.Logger
	now   func() time.Time

	mu       sync.Mutex
	nav      Navigator
	state    State
	token    string
	user     *models.User
	redirect string
	connect  *Intent
	subs     map[int]chan Event
	nextSub  int
	// epoch changes whenever a gate operation rewrites the session, so a
	// bootstrap that read the store earlier does not apply stale state.
	epoch uint64
}

func NewGate(store Store, users UserFetcher, log logging.Logger) *Gate {
	if log == nil {
		log = logging.Nop()
	}
	return &Gate{
		store: store,
		users: users,
		log:   log,
		now:   time.Now,
		subs:  make(map[int]chan Event),
	}
}

// SetNavigator installs the navigator used by CompleteLogin.
func (g *Gate) SetNavigator(nav Navigator) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nav = nav
}

// Bootstrap restores the session from the store. A missing, sentinel or
// expired credential signs the user out; otherwise the credential is checked
// against the backend and any failure signs the user out silently. The
// returned error is only for local storage failures.
func (g *Gate) Bootstrap(ctx context.Context) error {
	g.mu.Lock()
	start := g.epoch
	g.mu.Unlock()

	snap, err := g.store.Load(ctx)

	g.mu.Lock()
	if g.epoch != start {
		g.mu.Unlock()
		g.log.Debug(ctx, "session changed during bootstrap, snapshot discarded")
		return nil
	}
	if err != nil {
		g.resetLocked()
		g.setStateLocked(Unauthenticated)
		g.mu.Unlock()
		return fmt.Errorf("load session: %w", err)
	}

	g.redirect = snap.Redirect
	if !credential.Valid(snap.Token, g.now()) {
		g.token = ""
		g.user = nil
		g.setStateLocked(Unauthenticated)
		err := g.store.ClearCredential(ctx)
		g.mu.Unlock()
		return err
	}

	tok := snap.Token
	g.token = tok
	g.user = snap.User
	g.setStateLocked(Authenticated)
	start = g.epoch
	g.mu.Unlock()

	profile, err := g.users.Me(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.epoch != start || g.token != tok {
		// logged out or in again while the request was in flight
		return nil
	}

	if err != nil {
		g.log.Info(ctx, "stored credential rejected", "error", err)
		g.token = ""
		g.user = nil
		g.setStateLocked(Unauthenticated)
		return g.store.ClearCredential(ctx)
	}

	u := profile.User
	g.user = &u
	g.publishLocked(Event{Kind: StateChanged, State: g.state})
	if err := g.store.SaveUser(ctx, u); err != nil {
		g.log.Warn(ctx, "cache current user", "error", err)
	}
	return nil
}

// BootstrapAsync runs Bootstrap in the background. The returned channel is
// closed once the state has been updated.
func (g *Gate) BootstrapAsync(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := g.Bootstrap(ctx); err != nil {
			g.log.Error(ctx, "session bootstrap", "error", err)
		}
	}()
	return done
}

// RequireAuth reports whether the caller may proceed. When no credential is
// present it remembers intent, replacing any earlier one, moves to
// AuthPending and returns false.
func (g *Gate) RequireAuth(ctx context.Context, intent Intent) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if credential.Present(g.token) {
		return true, nil
	}

	g.epoch++
	switch intent.Kind {
	case IntentRedirect:
		if err := g.store.SetRedirect(ctx, intent.Path); err != nil {
			return false, fmt.Errorf("remember redirect: %w", err)
		}
		g.redirect = intent.Path
		g.connect = nil
	case IntentConnect:
		if err := g.store.ClearRedirect(ctx); err != nil {
			return false, fmt.Errorf("remember connect: %w", err)
		}
		in := intent
		g.redirect = ""
		g.connect = &in
	}

	g.setStateLocked(AuthPending)
	return false, nil
}

// CompleteLogin stores the new session, closes the prompt and performs
// exactly one navigation: the remembered redirect, else the remembered
// connect target, else the dashboard. The pending intent is gone afterwards.
func (g *Gate) CompleteLogin(ctx context.Context, token string, user models.User) (string, error) {
	if !credential.Present(token) {
		return "", ErrInvalidCredential
	}

	g.mu.Lock()
	stored, err := g.store.SaveLogin(ctx, token, user)
	if err != nil {
		g.setStateLocked(Unauthenticated)
		g.mu.Unlock()
		return "", err
	}

	target := routes.Dashboard
	switch {
	case stored != "":
		target = stored
	case g.redirect != "":
		target = g.redirect
	case g.connect != nil:
		target = g.connect.Target(user.ID)
	}

	u := user
	g.epoch++
	g.token = token
	g.user = &u
	g.redirect = ""
	g.connect = nil
	g.setStateLocked(Authenticated)
	nav := g.nav
	g.mu.Unlock()

	g.log.Info(ctx, "logged in", "user_id", user.ID, "target", target)

	if nav == nil {
		return target, nil
	}
	if err := nav.Navigate(ctx, target); err != nil {
		return target, fmt.Errorf("navigate %s: %w", target, err)
	}
	return target, nil
}

// Cancel closes the login prompt. The pending intent is kept.
func (g *Gate) Cancel(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == AuthPending {
		g.setStateLocked(Unauthenticated)
	}
}

// Logout signs the user out after explicit confirmation, dropping any pending
// intent, and asks subscribers to reload.
func (g *Gate) Logout(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.store.Clear(ctx); err != nil {
		return err
	}
	g.epoch++
	g.resetLocked()
	g.setStateLocked(Unauthenticated)
	g.publishLocked(Event{Kind: Reload, State: Unauthenticated})
	g.log.Info(ctx, "logged out")
	return nil
}

// Reject drops a credential the backend refused.
func (g *Gate) Reject(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rejectLocked(ctx)
}

// OnUnauthorized is the transport hook. It rejects the session only if token
// is still the current credential, so a stale answer cannot sign out a newer
// login.
func (g *Gate) OnUnauthorized(ctx context.Context, token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if token == "" || token != g.token {
		return
	}
	g.rejectLocked(ctx)
}

func (g *Gate) rejectLocked(ctx context.Context) {
	if err := g.store.Clear(ctx); err != nil {
		g.log.Error(ctx, "clear rejected session", "error", err)
	}
	g.epoch++
	g.resetLocked()
	g.setStateLocked(Unauthenticated)
	g.log.Info(ctx, "credential rejected by server")
}

// Subscribe registers an observer. Events are dropped for subscribers that
// fall more than a few events behind. The returned func unsubscribes and
// closes the channel.
func (g *Gate) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	g.mu.Lock()
	id := g.nextSub
	g.nextSub++
	g.subs[id] = ch
	g.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.subs, id)
			g.mu.Unlock()
			close(ch)
		})
	}
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (g *Gate) CurrentUser() *models.User {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.user == nil {
		return nil
	}
	u := *g.user
	return &u
}

// Token implements client.TokenSource.
func (g *Gate) Token() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.token
}

// Pending returns the intent that will be resolved on the next login.
func (g *Gate) Pending() (Intent, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.redirect != "" {
		return RedirectTo(g.redirect), true
	}
	if g.connect != nil {
		return *g.connect, true
	}
	return Intent{}, false
}

func (g *Gate) resetLocked() {
	g.token = ""
	g.user = nil
	g.redirect = ""
	g.connect = nil
}

func (g *Gate) setStateLocked(s State) {
	g.state = s
	g.publishLocked(Event{Kind: StateChanged, State: s})
}

func (g *Gate) publishLocked(e Event) {
	for _, ch := range g.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
