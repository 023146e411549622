package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Nigam11/skillhub-front/internal/client/client"
	"github.com/Nigam11/skillhub-front/internal/client/config"
	"github.com/Nigam11/skillhub-front/internal/client/routes"
	"github.com/Nigam11/skillhub-front/internal/client/services"
	"github.com/Nigam11/skillhub-front/internal/client/session"
	"github.com/Nigam11/skillhub-front/internal/logging"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	gate      *session.Gate
	auth      services.AuthService
	profiles  services.ProfileService
	resources services.ResourceService
	router    *Router

	events      <-chan session.Event
	unsubscribe func()

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens local state, connects the HTTP client to the session gate and
// wires the views. Close releases what NewApp opened.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api, err := client.NewHTTPClient(c.ServerBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	gate := session.NewGate(session.NewSQLStore(db), api, log)
	api.Authenticate(gate, gate.OnUnauthorized)

	a := newApp(c, log, gate,
		services.NewAuthService(api),
		services.NewProfileService(api),
		services.NewResourceService(api),
	)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, gate *session.Gate,
	auth services.AuthService, profiles services.ProfileService, resources services.ResourceService,
) *App {
	if log == nil {
		log = logging.Nop()
	}
	a := &App{
		config:    c,
		log:       log,
		gate:      gate,
		auth:      auth,
		profiles:  profiles,
		resources: resources,
		router:    NewRouter(),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
	a.registerViews()
	gate.SetNavigator(a.router)
	a.events, a.unsubscribe = gate.Subscribe()
	return a
}

// Run restores the session in the background, shows the dashboard and
// serves commands until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close(ctx)

	done := a.gate.BootstrapAsync(ctx)

	fmt.Fprintln(a.out, "SkillHub: share and discover learning resources. Type 'help' for commands.")
	if err := a.router.Navigate(ctx, routes.Dashboard); err != nil {
		a.handleError(ctx, err)
	}

	runREPL(ctx, a, a.promptStatus, a.reader)

	<-done
	return nil
}

// Close stops event delivery and releases the HTTP client and the database.
func (a *App) Close(ctx context.Context) {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.auth != nil {
		if err := a.auth.Close(ctx); err != nil {
			a.log.Warn(ctx, "close api client", "error", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "close database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.gate.State() == session.Authenticated
}

func (a *App) promptStatus() string {
	name := "guest"
	if u := a.gate.CurrentUser(); u != nil && u.Name != "" {
		name = u.Name
	}
	return fmt.Sprintf("%s [%s]", name, a.gate.State())
}

// drainEvents handles the session events queued since the last prompt.
// A reload re-renders the current page, or the dashboard when the current
// page needs a signed-in user.
func (a *App) drainEvents(ctx context.Context) {
	reload := false
drain:
	for {
		select {
		case ev, ok := <-a.events:
			if !ok {
				a.events = nil
				break drain
			}
			a.log.Debug(ctx, "session event", "kind", ev.Kind.String(), "state", ev.State.String())
			if ev.Kind == session.Reload {
				reload = true
			}
		default:
			break drain
		}
	}

	if !reload {
		return
	}
	path := a.router.Current()
	if !renderOnReload(path) {
		path = routes.Dashboard
	}
	if err := a.router.Navigate(ctx, path); err != nil {
		a.handleError(ctx, err)
	}
}

func renderOnReload(path string) bool {
	r, err := routes.Parse(path)
	if err != nil {
		return false
	}
	switch r.Name {
	case routes.NameDashboard, routes.NameSearch, routes.NameUser, routes.NameAbout:
		return true
	default:
		return false
	}
}

// Status prints the session state, the pending post-login action and the
// backend in use.
func (a *App) Status(ctx context.Context) error {
	user := "-"
	if u := a.gate.CurrentUser(); u != nil {
		user = fmt.Sprintf("%s <%s> (id %d)", u.Name, u.Email, u.ID)
	}
	pending := "none"
	if i, ok := a.gate.Pending(); ok {
		pending = i.String()
	}
	page := a.router.Current()
	if page == "" {
		page = "-"
	}

	fmt.Fprintf(a.out, "State:   %s\n", a.gate.State())
	fmt.Fprintf(a.out, "User:    %s\n", user)
	fmt.Fprintf(a.out, "Pending: %s\n", pending)
	fmt.Fprintf(a.out, "Page:    %s\n", page)
	if a.config != nil {
		fmt.Fprintf(a.out, "Server:  %s\n", a.config.ServerBaseURL)
	}
	return nil
}

var errInvalidInput = errors.New("invalid input")

var errorMessages = []struct {
	err error
	msg string
}{
	{services.ErrInvalidCredentials, "Invalid email or password"},
	{services.ErrPasswordMismatch, "Passwords do not match"},
	{services.ErrSignupRejected, "Signup failed. Email may already be in use."},
	{services.ErrUserNotFound, "User not found"},
	{services.ErrInvalidResetToken, "Invalid token or server error"},
	{services.ErrEmptyQuery, "Type something to search for"},
	{routes.ErrUnknownRoute, "Page not found"},
	{client.ErrUnauthorized, "Please log in to continue."},
	{client.ErrUnavailable, "Server unavailable, please try again later."},
	{client.ErrNotFound, "Not found"},
}

// handleError reports err to the user. Command errors never end the REPL.
// A rejected credential is not reported: the gate has already signed the
// user out and the prompt shows it.
func (a *App) handleError(ctx context.Context, err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	if errors.Is(err, client.ErrUnauthorized) {
		a.log.Info(ctx, "request rejected, signed out", "error", err)
		return
	}
	fmt.Fprintln(a.out, a.userMessage(ctx, err))
}

func (a *App) userMessage(ctx context.Context, err error) string {
	if errors.Is(err, services.ErrMissingField) {
		return "Please fill in the required fields: " + strings.TrimPrefix(err.Error(), services.ErrMissingField.Error()+": ")
	}
	if errors.Is(err, errInvalidInput) {
		return "Invalid input: " + strings.TrimPrefix(err.Error(), errInvalidInput.Error()+": ")
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	if errors.Is(err, client.ErrValidation) {
		if msg := client.Message(err); msg != "" {
			return "Request rejected: " + msg
		}
		return "Request rejected by server"
	}
	a.log.Error(ctx, "command failed", "error", err)
	return "Something went wrong, please try again."
}
