package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nigam11/skillhub-front/internal/client/client"
	"github.com/Nigam11/skillhub-front/internal/client/models"
	"github.com/Nigam11/skillhub-front/internal/client/routes"
)

func newGate(t *testing.T, store *memStore, users *fakeUsers) (*Gate, *fakeNav) {
	t.Helper()
	if users == nil {
		users = &fakeUsers{}
	}
	g := NewGate(store, users, nil)
	nav := &fakeNav{}
	g.SetNavigator(nav)
	return g, nav
}

func meReturns(u models.User) *fakeUsers {
	return &fakeUsers{me: func(context.Context) (*models.Profile, error) {
		return &models.Profile{User: u}, nil
	}}
}

func TestBootstrap_NoToken(t *testing.T) {
	store := &memStore{user: &models.User{ID: 1}, redirect: routes.Profile}
	g, _ := newGate(t, store, nil)

	require.NoError(t, g.Bootstrap(context.Background()))

	assert.Equal(t, Unauthenticated, g.State())
	assert.Nil(t, g.CurrentUser())
	assert.Nil(t, store.user, "user cache cleared without a credential")
	assert.Equal(t, routes.Profile, store.redirect, "redirect survives a restart")

	p, ok := g.Pending()
	require.True(t, ok)
	assert.Equal(t, RedirectTo(routes.Profile), p)
}

func TestBootstrap_SentinelTokens(t *testing.T) {
	for _, tok := range []string{"undefined", "null", "  "} {
		store := &memStore{token: tok, user: &models.User{ID: 1}}
		g, _ := newGate(t, store, nil)

		require.NoError(t, g.Bootstrap(context.Background()))
		assert.Equal(t, Unauthenticated, g.State(), tok)
		assert.Empty(t, store.token, tok)
		assert.Nil(t, store.user, tok)
	}
}

func TestBootstrap_ExpiredJWT(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	store := &memStore{token: tok}
	g, _ := newGate(t, store, nil)
	g.now = func() time.Time { return now }

	require.NoError(t, g.Bootstrap(context.Background()))
	assert.Equal(t, Unauthenticated, g.State())
	assert.Empty(t, store.token)
}

func TestBootstrap_ValidToken(t *testing.T) {
	store := &memStore{token: "tok-9", user: &models.User{ID: 9, Name: "stale"}}
	g, _ := newGate(t, store, meReturns(models.User{ID: 9, Name: "Asha"}))

	require.NoError(t, g.Bootstrap(context.Background()))

	assert.Equal(t, Authenticated, g.State())
	assert.Equal(t, "tok-9", g.Token())
	require.NotNil(t, g.CurrentUser())
	assert.Equal(t, "Asha", g.CurrentUser().Name)
	assert.Equal(t, "Asha", store.user.Name, "fresh user cached")
}

func TestBootstrap_401ClearsSilently(t *testing.T) {
	store := &memStore{token: "tok-9", user: &models.User{ID: 9}}
	var g *Gate
	users := &fakeUsers{me: func(ctx context.Context) (*models.Profile, error) {
		// what the transport does on a 401 to a credentialed request
		g.OnUnauthorized(ctx, "tok-9")
		return nil, &client.APIError{StatusCode: 401}
	}}
	g, _ = newGate(t, store, users)

	require.NoError(t, g.Bootstrap(context.Background()))

	assert.Equal(t, Unauthenticated, g.State())
	assert.Empty(t, g.Token())
	assert.Nil(t, g.CurrentUser())
	assert.Empty(t, store.token)
	assert.Nil(t, store.user)
}

func TestBootstrap_NetworkFailureDegrades(t *testing.T) {
	store := &memStore{token: "tok-9", user: &models.User{ID: 9}}
	users := &fakeUsers{me: func(context.Context) (*models.Profile, error) {
		return nil, client.ErrUnavailable
	}}
	g, _ := newGate(t, store, users)

	require.NoError(t, g.Bootstrap(context.Background()))
	assert.Equal(t, Unauthenticated, g.State())
	assert.Empty(t, store.token)
	assert.Nil(t, store.user)
}

func TestBootstrap_StoreFailure(t *testing.T) {
	store := &memStore{fail: errors.New("disk gone")}
	g, _ := newGate(t, store, nil)

	err := g.Bootstrap(context.Background())
	require.Error(t, err)
	assert.Equal(t, Unauthenticated, g.State())
}

func TestBootstrap_StaleResultDiscarded(t *testing.T) {
	store := &memStore{token: "old"}
	release := make(chan struct{})
	started := make(chan struct{})
	users := &fakeUsers{me: func(context.Context) (*models.Profile, error) {
		close(started)
		<-release
		return &models.Profile{User: models.User{ID: 1, Name: "old user"}}, nil
	}}
	g, _ := newGate(t, store, users)

	done := g.BootstrapAsync(context.Background())
	<-started

	_, err := g.CompleteLogin(context.Background(), "new", models.User{ID: 2, Name: "new user"})
	require.NoError(t, err)
	close(release)
	<-done

	assert.Equal(t, "new", g.Token())
	assert.Equal(t, "new user", g.CurrentUser().Name)
}

func TestBootstrap_SnapshotLoadedBeforeLoginIsDiscarded(t *testing.T) {
	tests := []struct {
		name  string
		store *memStore
	}{
		{"empty store", &memStore{}},
		{"sentinel token", &memStore{token: "undefined", redirect: "/saved"}},
		{"valid token", &memStore{token: "old", user: &models.User{ID: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			release := make(chan struct{})
			loaded := make(chan struct{})
			tt.store.afterLoad = func() {
				close(loaded)
				<-release
			}
			g, _ := newGate(t, tt.store, meReturns(models.User{ID: 1, Name: "old user"}))

			done := g.BootstrapAsync(context.Background())
			<-loaded

			_, err := g.CompleteLogin(context.Background(), "fresh-token", models.User{ID: 9, Name: "fresh"})
			require.NoError(t, err)
			close(release)
			<-done

			assert.Equal(t, Authenticated, g.State())
			assert.Equal(t, "fresh-token", g.Token())
			require.NotNil(t, g.CurrentUser())
			assert.Equal(t, int64(9), g.CurrentUser().ID)
			assert.Equal(t, "fresh-token", tt.store.storedToken())
		})
	}
}

func TestBootstrap_IntentRecordedDuringLoadSurvives(t *testing.T) {
	release := make(chan struct{})
	loaded := make(chan struct{})
	store := &memStore{redirect: "/saved"}
	store.afterLoad = func() {
		close(loaded)
		<-release
	}
	g, nav := newGate(t, store, nil)

	done := g.BootstrapAsync(context.Background())
	<-loaded

	ok, err := g.RequireAuth(context.Background(), ConnectWith(7))
	require.NoError(t, err)
	require.False(t, ok)
	close(release)
	<-done

	intent, pending := g.Pending()
	require.True(t, pending)
	assert.Equal(t, ConnectWith(7), intent)

	_, err = g.CompleteLogin(context.Background(), "tok", models.User{ID: 9})
	require.NoError(t, err)
	assert.Equal(t, []string{routes.User(7)}, nav.visited())
}

func TestBootstrapAsync_ClosesDone(t *testing.T) {
	g, _ := newGate(t, &memStore{}, nil)

	select {
	case <-g.BootstrapAsync(context.Background()):
	case <-time.After(time.Second):
		t.Fatal("bootstrap did not finish")
	}
	assert.Equal(t, Unauthenticated, g.State())
}

func TestRequireAuth_Authenticated(t *testing.T) {
	store := &memStore{token: "tok"}
	g, _ := newGate(t, store, meReturns(models.User{ID: 1}))
	require.NoError(t, g.Bootstrap(context.Background()))

	ok, err := g.RequireAuth(context.Background(), RedirectTo(routes.Profile))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, store.redirect, "nothing remembered when allowed")
	_, pending := g.Pending()
	assert.False(t, pending)
}

func TestRequireAuth_RecordsIntentAndOpensPrompt(t *testing.T) {
	store := &memStore{}
	g, nav := newGate(t, store, nil)
	events, unsub := g.Subscribe()
	defer unsub()

	ok, err := g.RequireAuth(context.Background(), RedirectTo(routes.Search("java")))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, AuthPending, g.State())
	assert.Equal(t, "/search/java", store.redirect)
	assert.Empty(t, nav.visited())

	select {
	case e := <-events:
		assert.Equal(t, Event{Kind: StateChanged, State: AuthPending}, e)
	default:
		t.Fatal("expected a state change event")
	}
}

func TestRequireAuth_LastWriterWins(t *testing.T) {
	ctx := context.Background()

	t.Run("connect then redirect", func(t *testing.T) {
		store := &memStore{}
		g, nav := newGate(t, store, nil)

		_, _ = g.RequireAuth(ctx, ConnectWith(7))
		_, _ = g.RequireAuth(ctx, RedirectTo(routes.Search("go")))

		target, err := g.CompleteLogin(ctx, "tok", models.User{ID: 9})
		require.NoError(t, err)
		assert.Equal(t, "/search/go", target)
		assert.Equal(t, []string{"/search/go"}, nav.visited())
	})

	t.Run("redirect then connect", func(t *testing.T) {
		store := &memStore{}
		g, nav := newGate(t, store, nil)

		_, _ = g.RequireAuth(ctx, RedirectTo(routes.Search("go")))
		_, _ = g.RequireAuth(ctx, ConnectWith(7))
		assert.Empty(t, store.redirect, "persisted redirect dropped")

		target, err := g.CompleteLogin(ctx, "tok", models.User{ID: 9})
		require.NoError(t, err)
		assert.Equal(t, "/user/7", target)
		assert.Equal(t, []string{"/user/7"}, nav.visited())
	})

	t.Run("two redirects", func(t *testing.T) {
		store := &memStore{}
		g, nav := newGate(t, store, nil)

		_, _ = g.RequireAuth(ctx, RedirectTo(routes.Search("a")))
		_, _ = g.RequireAuth(ctx, RedirectTo(routes.Search("b")))

		_, err := g.CompleteLogin(ctx, "tok", models.User{ID: 9})
		require.NoError(t, err)
		assert.Equal(t, []string{"/search/b"}, nav.visited())
	})
}

func TestCompleteLogin_ConnectTargets(t *testing.T) {
	tests := []struct {
		name    string
		ownerID int64
		userID  int64
		want    string
	}{
		{"own resource", 42, 42, "/profile"},
		{"other owner", 7, 9, "/user/7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, nav := newGate(t, &memStore{}, nil)

			ok, err := g.RequireAuth(context.Background(), ConnectWith(tt.ownerID))
			require.NoError(t, err)
			require.False(t, ok)

			target, err := g.CompleteLogin(context.Background(), "tok", models.User{ID: tt.userID})
			require.NoError(t, err)
			assert.Equal(t, tt.want, target)
			assert.Equal(t, []string{tt.want}, nav.visited())
		})
	}
}

func TestCompleteLogin_DefaultsToDashboard(t *testing.T) {
	store := &memStore{}
	g, nav := newGate(t, store, nil)

	target, err := g.CompleteLogin(context.Background(), "tok", models.User{ID: 1, Name: "A"})
	require.NoError(t, err)

	assert.Equal(t, routes.Dashboard, target)
	assert.Equal(t, []string{routes.Dashboard}, nav.visited())
	assert.Equal(t, Authenticated, g.State())
	assert.Equal(t, "tok", store.token)
	assert.Equal(t, "A", store.user.Name)
}

func TestCompleteLogin_ConsumesIntentOnce(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	g, nav := newGate(t, store, nil)

	_, _ = g.RequireAuth(ctx, ConnectWith(7))
	_, err := g.CompleteLogin(ctx, "tok", models.User{ID: 9})
	require.NoError(t, err)

	_, pending := g.Pending()
	assert.False(t, pending)
	assert.Empty(t, store.redirect)

	require.NoError(t, g.Logout(ctx, true))
	_, err = g.CompleteLogin(ctx, "tok2", models.User{ID: 9})
	require.NoError(t, err)

	assert.Equal(t, []string{"/user/7", routes.Dashboard}, nav.visited())
}

func TestCompleteLogin_RejectsSentinelToken(t *testing.T) {
	g, nav := newGate(t, &memStore{}, nil)

	_, err := g.CompleteLogin(context.Background(), "undefined", models.User{ID: 1})
	require.ErrorIs(t, err, ErrInvalidCredential)
	assert.Empty(t, nav.visited())
	assert.Equal(t, Unauthenticated, g.State())
}

func TestCompleteLogin_StoreFailure(t *testing.T) {
	store := &memStore{}
	g, nav := newGate(t, store, nil)
	_, _ = g.RequireAuth(context.Background(), ConnectWith(7))

	store.fail = errors.New("disk full")
	_, err := g.CompleteLogin(context.Background(), "tok", models.User{ID: 9})
	require.Error(t, err)

	assert.Empty(t, nav.visited())
	assert.Equal(t, Unauthenticated, g.State())
	assert.Empty(t, g.Token())
}

func TestCompleteLogin_NavigationErrorStillLogsIn(t *testing.T) {
	g, nav := newGate(t, &memStore{}, nil)
	nav.err = errors.New("view failed")

	target, err := g.CompleteLogin(context.Background(), "tok", models.User{ID: 1})
	require.Error(t, err)
	assert.Equal(t, routes.Dashboard, target)
	assert.Equal(t, Authenticated, g.State())
	assert.Len(t, nav.visited(), 1)
}

func TestCancel_KeepsIntent(t *testing.T) {
	ctx := context.Background()
	g, nav := newGate(t, &memStore{}, nil)

	_, _ = g.RequireAuth(ctx, ConnectWith(7))
	g.Cancel(ctx)
	assert.Equal(t, Unauthenticated, g.State())

	p, ok := g.Pending()
	require.True(t, ok)
	assert.Equal(t, ConnectWith(7), p)

	_, err := g.CompleteLogin(ctx, "tok", models.User{ID: 9})
	require.NoError(t, err)
	assert.Equal(t, []string{"/user/7"}, nav.visited())
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	g, _ := newGate(t, store, nil)
	_, err := g.CompleteLogin(ctx, "tok", models.User{ID: 9})
	require.NoError(t, err)

	require.ErrorIs(t, g.Logout(ctx, false), ErrNotConfirmed)
	assert.Equal(t, Authenticated, g.State())

	events, unsub := g.Subscribe()
	defer unsub()

	require.NoError(t, g.Logout(ctx, true))
	assert.Equal(t, Unauthenticated, g.State())
	assert.Empty(t, g.Token())
	assert.Nil(t, g.CurrentUser())
	assert.Empty(t, store.token)
	assert.Nil(t, store.user)

	var kinds []EventKind
	for len(events) > 0 {
		kinds = append(kinds, (<-events).Kind)
	}
	assert.Equal(t, []EventKind{StateChanged, Reload}, kinds)
}

func TestLogout_DiscardsPendingIntent(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	g, nav := newGate(t, store, nil)

	_, _ = g.RequireAuth(ctx, RedirectTo(routes.Search("x")))
	g.Cancel(ctx)
	require.NoError(t, g.Logout(ctx, true))

	_, pending := g.Pending()
	assert.False(t, pending)
	assert.Empty(t, store.redirect)

	_, err := g.CompleteLogin(ctx, "tok", models.User{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{routes.Dashboard}, nav.visited())
}

func TestReject_ClearsTokenAndUserTogether(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	g, _ := newGate(t, store, nil)
	_, err := g.CompleteLogin(ctx, "tok", models.User{ID: 9})
	require.NoError(t, err)

	g.Reject(ctx)

	assert.Equal(t, Unauthenticated, g.State())
	assert.Empty(t, g.Token())
	assert.Nil(t, g.CurrentUser())
	assert.Empty(t, store.token)
	assert.Nil(t, store.user)
}

func TestOnUnauthorized_IgnoresStaleToken(t *testing.T) {
	ctx := context.Background()
	g, _ := newGate(t, &memStore{}, nil)
	_, err := g.CompleteLogin(ctx, "new", models.User{ID: 9})
	require.NoError(t, err)

	g.OnUnauthorized(ctx, "old")
	assert.Equal(t, Authenticated, g.State())

	g.OnUnauthorized(ctx, "new")
	assert.Equal(t, Unauthenticated, g.State())
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	g, _ := newGate(t, &memStore{}, nil)
	events, unsub := g.Subscribe()
	unsub()
	unsub()

	_, open := <-events
	assert.False(t, open)

	// publishing after unsubscribe must not panic
	g.Reject(context.Background())
}

func TestSubscribe_SlowSubscriberDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	g, _ := newGate(t, &memStore{}, nil)
	_, unsub := g.Subscribe()
	defer unsub()

	for i := 0; i < subscriberBuffer*2; i++ {
		_, _ = g.RequireAuth(ctx, ConnectWith(int64(i)))
		g.Cancel(ctx)
	}
	assert.Equal(t, Unauthenticated, g.State())
}

func TestIntent_Target(t *testing.T) {
	assert.Equal(t, "/search/go", RedirectTo("/search/go").Target(1))
	assert.Equal(t, routes.Dashboard, RedirectTo("").Target(1))
	assert.Equal(t, routes.Profile, ConnectWith(42).Target(42))
	assert.Equal(t, "/user/7", ConnectWith(7).Target(9))
	assert.Equal(t, routes.Dashboard, Intent{}.Target(1))
}
