package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn writes REPL prompts and notices; tests swap it out.
var printlnFn = fmt.Println

// execIface is what runREPL dispatches to. App implements it.
type execIface interface {
	isLoggedIn() bool
	drainEvents(ctx context.Context)
	handleError(ctx context.Context, err error)

	Dashboard(ctx context.Context) error
	Search(ctx context.Context, keyword string) error
	Suggest(ctx context.Context, input string) error
	SeeMore(ctx context.Context, keyword string) error
	Connect(ctx context.Context, ownerID int64) error
	About(ctx context.Context) error
	User(ctx context.Context, id int64) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	RemovePicture(ctx context.Context) error
	Share(ctx context.Context) error
	EditResource(ctx context.Context, id int64) error
	DeleteResource(ctx context.Context, id int64) error
	Saved(ctx context.Context) error
	Unsave(ctx context.Context, id int64) error

	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Status(ctx context.Context) error
}

const (
	guestHelp = `Available commands:
  dashboard | search <keyword> | suggest <text> | seemore <keyword> | about
  connect <owner id> | user <id> | profile | saved | share
  signup | login | forgot | reset | status | help | exit`

	memberHelp = `Available commands:
  dashboard | search <keyword> | suggest <text> | seemore <keyword> | about
  connect <owner id> | user <id>
  profile | editprofile | removepic | saved | unsave <id>
  share | editresource <id> | deleteresource <id>
  logout | status | help | exit`
)

// runREPL starts a read–eval–print loop for the SkillHub client.
//
// Before each prompt it applies queued session events, so a logout or an
// expired session is reflected in the prompt and the current page. The first
// token of a line is the command; the rest are its arguments. Command errors
// are reported through handleError and never end the loop. The loop exits
// on EOF, on a cancelled context, or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		a.drainEvents(ctx)

		printlnFn(fmt.Sprintf("skillhub %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]
		rest := strings.Join(args, " ")

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(memberHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "dashboard", "home":
			a.handleError(ctx, a.Dashboard(ctx))

		case "search":
			a.handleError(ctx, a.Search(ctx, rest))

		case "suggest":
			a.handleError(ctx, a.Suggest(ctx, rest))

		case "seemore":
			a.handleError(ctx, a.SeeMore(ctx, rest))

		case "about":
			a.handleError(ctx, a.About(ctx))

		case "connect":
			withID(ctx, a, args, "connect <owner id>", a.Connect)

		case "user":
			withID(ctx, a, args, "user <id>", a.User)

		case "profile":
			a.handleError(ctx, a.Profile(ctx))

		case "editprofile":
			a.handleError(ctx, a.EditProfile(ctx))

		case "removepic":
			a.handleError(ctx, a.RemovePicture(ctx))

		case "share":
			a.handleError(ctx, a.Share(ctx))

		case "editresource":
			withID(ctx, a, args, "editresource <id>", a.EditResource)

		case "deleteresource":
			withID(ctx, a, args, "deleteresource <id>", a.DeleteResource)

		case "saved":
			a.handleError(ctx, a.Saved(ctx))

		case "unsave":
			withID(ctx, a, args, "unsave <id>", a.Unsave)

		case "signup":
			a.handleError(ctx, a.Signup(ctx))

		case "login":
			a.handleError(ctx, a.Login(ctx))

		case "logout":
			a.handleError(ctx, a.Logout(ctx))

		case "forgot":
			a.handleError(ctx, a.ForgotPassword(ctx))

		case "reset":
			a.handleError(ctx, a.ResetPassword(ctx))

		case "status":
			a.handleError(ctx, a.Status(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func withID(ctx context.Context, a execIface, args []string, usage string, fn func(context.Context, int64) error) {
	if len(args) != 1 {
		printlnFn("Usage:", usage)
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		printlnFn("Usage:", usage)
		return
	}
	a.handleError(ctx, fn(ctx, id))
}
