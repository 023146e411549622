package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nigam11/skillhub-front/internal/client/routes"
	"github.com/Nigam11/skillhub-front/internal/client/session"
)

func (a *App) Dashboard(ctx context.Context) error {
	return a.router.Navigate(ctx, routes.Dashboard)
}

func (a *App) About(ctx context.Context) error {
	return a.router.Navigate(ctx, routes.About)
}

// Search opens the results page for keyword. A blank keyword does nothing.
func (a *App) Search(ctx context.Context, keyword string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}
	return a.router.Navigate(ctx, routes.Search(keyword))
}

// Suggest lists course titles starting from input, without opening a page.
func (a *App) Suggest(ctx context.Context, input string) error {
	titles, err := a.resources.Suggest(ctx, input)
	if err != nil {
		return err
	}
	if len(titles) == 0 {
		fmt.Fprintln(a.out, "No suggestions.")
		return nil
	}
	for _, t := range titles {
		fmt.Fprintf(a.out, "  %s\n", t)
	}
	return nil
}

// SeeMore opens the full results for a dashboard section. Guests log in first.
func (a *App) SeeMore(ctx context.Context, keyword string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}
	path := routes.Search(keyword)
	return a.gated(ctx, session.RedirectTo(path), func(ctx context.Context) error {
		return a.router.Navigate(ctx, path)
	})
}

// Connect opens the profile of a resource owner, or the own profile when the
// owner is the signed-in user.
func (a *App) Connect(ctx context.Context, ownerID int64) error {
	intent := session.ConnectWith(ownerID)
	return a.gated(ctx, intent, func(ctx context.Context) error {
		me, err := a.currentUserID(ctx)
		if err != nil {
			return err
		}
		return a.router.Navigate(ctx, intent.Target(me))
	})
}

func (a *App) currentUserID(ctx context.Context) (int64, error) {
	if u := a.gate.CurrentUser(); u != nil && u.ID != 0 {
		return u.ID, nil
	}
	p, err := a.profiles.Me(ctx)
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (a *App) Profile(ctx context.Context) error {
	return a.openGated(ctx, routes.Profile)
}

func (a *App) EditProfile(ctx context.Context) error {
	return a.openGated(ctx, routes.EditProfile)
}

func (a *App) Saved(ctx context.Context) error {
	return a.openGated(ctx, routes.Saved)
}

func (a *App) Share(ctx context.Context) error {
	return a.openGated(ctx, routes.Share)
}

func (a *App) EditResource(ctx context.Context, id int64) error {
	return a.openGated(ctx, routes.EditResource(id))
}

func (a *App) openGated(ctx context.Context, path string) error {
	return a.gated(ctx, session.RedirectTo(path), func(ctx context.Context) error {
		return a.router.Navigate(ctx, path)
	})
}

// User shows a public profile. No login is needed.
func (a *App) User(ctx context.Context, id int64) error {
	return a.router.Navigate(ctx, routes.User(id))
}

func (a *App) RemovePicture(ctx context.Context) error {
	return a.gated(ctx, session.RedirectTo(routes.Profile), func(ctx context.Context) error {
		ok, err := confirm(a.reader, "Remove your profile picture?", a.out)
		if err != nil || !ok {
			return err
		}
		if err := a.profiles.DeleteProfilePicture(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Profile picture removed.")
		return nil
	})
}

func (a *App) DeleteResource(ctx context.Context, id int64) error {
	return a.gated(ctx, session.RedirectTo(routes.Profile), func(ctx context.Context) error {
		ok, err := confirm(a.reader, fmt.Sprintf("Delete resource %d?", id), a.out)
		if err != nil || !ok {
			return err
		}
		if err := a.resources.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Resource deleted.")
		return nil
	})
}

func (a *App) Unsave(ctx context.Context, id int64) error {
	return a.gated(ctx, session.RedirectTo(routes.Saved), func(ctx context.Context) error {
		if err := a.resources.Unsave(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Removed from saved.")
		return nil
	})
}
