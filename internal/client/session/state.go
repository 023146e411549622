package session

import (
	"github.com/Nigam11/skillhub-front/internal/client/routes"
)

// State is the gate's authentication state.
type State int

const (
	Unauthenticated State = iota
	AuthPending
	Authenticated
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case AuthPending:
		return "auth-pending"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

type EventKind int

const (
	// StateChanged fires on every state transition and whenever the
	// current user snapshot is replaced.
	StateChanged EventKind = iota + 1
	// Reload asks session-dependent views to refresh (after logout).
	Reload
)

func (k EventKind) String() string {
	switch k {
	case StateChanged:
		return "state-changed"
	case Reload:
		return "reload"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind  EventKind
	State State
}

type IntentKind int

const (
	IntentRedirect IntentKind = iota + 1
	IntentConnect
)

// Intent is the action to resume after login: either a route to open or a
// resource owner to connect with.
type Intent struct {
	Kind    IntentKind
	Path    string
	OwnerID int64
}

func RedirectTo(path string) Intent {
	return Intent{Kind: IntentRedirect, Path: path}
}

func ConnectWith(ownerID int64) Intent {
	return Intent{Kind: IntentConnect, OwnerID: ownerID}
}

// Target returns the route the intent leads to for the signed-in user.
// Connecting with oneself opens the own profile.
func (i Intent) Target(userID int64) string {
	switch i.Kind {
	case IntentRedirect:
		if i.Path != "" {
			return i.Path
		}
	case IntentConnect:
		if i.OwnerID == userID {
			return routes.Profile
		}
		return routes.User(i.OwnerID)
	}
	return routes.Dashboard
}

func (i Intent) String() string {
	switch i.Kind {
	case IntentRedirect:
		return "open " + i.Path
	case IntentConnect:
		return "connect with " + routes.User(i.OwnerID)
	default:
		return "none"
	}
}
