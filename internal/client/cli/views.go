package cli

import (
	"context"
	"fmt"

	"github.com/Nigam11/skillhub-front/internal/client/routes"
)

func (a *App) registerViews() {
	a.router.Handle(routes.NameDashboard, a.dashboardView)
	a.router.Handle(routes.NameSearch, a.searchView)
	a.router.Handle(routes.NameProfile, a.profileView)
	a.router.Handle(routes.NameUser, a.userView)
	a.router.Handle(routes.NameSaved, a.savedView)
	a.router.Handle(routes.NameAbout, a.aboutView)
	a.router.Handle(routes.NameEditProfile, a.editProfileForm)
	a.router.Handle(routes.NameEditResource, a.editResourceForm)
	a.router.Handle(routes.NameShare, a.shareForm)
	a.router.Handle(routes.NameForgotPassword, a.forgotPasswordForm)
	a.router.Handle(routes.NameResetPassword, a.resetPasswordForm)
}

func (a *App) dashboardView(ctx context.Context, _ routes.Route) error {
	if u := a.gate.CurrentUser(); u != nil {
		fmt.Fprintf(a.out, "\nWelcome back, %s!\n", displayName(*u))
	} else {
		fmt.Fprintln(a.out, "\nWelcome to SkillHub! Log in to see more and connect with course owners.")
	}

	for _, s := range a.resources.Dashboard(ctx) {
		fmt.Fprintf(a.out, "\n== %s ==\n", s.Title)
		if s.Err != nil {
			a.log.Warn(ctx, "dashboard section failed", "section", s.Keyword, "error", s.Err)
			fmt.Fprintf(a.out, "Could not load: %s\n", a.userMessage(ctx, s.Err))
			continue
		}
		renderResources(a.out, s.Items, "No courses found.")
		fmt.Fprintf(a.out, "Type 'seemore %s' for more.\n", s.Keyword)
	}
	return nil
}

func (a *App) searchView(ctx context.Context, r routes.Route) error {
	items, err := a.resources.Find(ctx, r.Param)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\nResults for %q\n", r.Param)
	renderResources(a.out, items, "No results found.")
	if len(items) > 0 {
		fmt.Fprintln(a.out, "Type 'connect <owner id>' to reach the owner of a course.")
	}
	return nil
}

func (a *App) profileView(ctx context.Context, _ routes.Route) error {
	p, err := a.profiles.Me(ctx)
	if err != nil {
		return err
	}
	renderProfile(a.out, p, true)

	saved, err := a.resources.Saved(ctx)
	fmt.Fprintln(a.out, "\nSaved courses:")
	if err != nil {
		a.log.Warn(ctx, "load saved resources", "error", err)
		fmt.Fprintf(a.out, "Could not load: %s\n", a.userMessage(ctx, err))
		return nil
	}
	renderResources(a.out, saved, "Nothing saved yet.")
	return nil
}

func (a *App) userView(ctx context.Context, r routes.Route) error {
	id, err := r.ID()
	if err != nil {
		return err
	}
	p, err := a.profiles.Public(ctx, id)
	if err != nil {
		return err
	}
	renderProfile(a.out, p, false)
	return nil
}

func (a *App) savedView(ctx context.Context, _ routes.Route) error {
	items, err := a.resources.Saved(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "\nSaved courses")
	renderResources(a.out, items, "Nothing saved yet.")
	if len(items) > 0 {
		fmt.Fprintln(a.out, "Type 'unsave <id>' to remove a course.")
	}
	return nil
}

func (a *App) aboutView(context.Context, routes.Route) error {
	fmt.Fprint(a.out, aboutText)
	return nil
}

const aboutText = `
About SkillHub

SkillHub brings learners and knowledge sharers together. Find quality
learning resources, or share your favourite course with everyone.

Mission: give learners curated, community-shared resources and let users
show the knowledge they have gained.

Vision: a global knowledge-sharing hub where students, professionals and
educators connect through lifelong learning.

Contact: skillhub.reset@gmail.com
`
