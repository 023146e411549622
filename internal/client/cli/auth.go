package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nigam11/skillhub-front/internal/client/models"
	"github.com/Nigam11/skillhub-front/internal/client/routes"
	"github.com/Nigam11/skillhub-front/internal/client/session"
	"github.com/Nigam11/skillhub-front/internal/common"
)

// Interactive input helpers, swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getImage      = GetImage
	confirm       = Confirm
)

// Login asks for credentials. Whatever the user was doing before being
// asked to log in is resumed by the gate afterwards.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Already logged in as %s.\n", a.promptStatus())
		return nil
	}
	if _, err := a.gate.RequireAuth(ctx, session.Intent{}); err != nil {
		return err
	}
	return a.promptLogin(ctx)
}

// promptLogin runs the login form for a pending gate. An empty email
// cancels it and leaves the remembered intent in place.
func (a *App) promptLogin(ctx context.Context) error {
	fmt.Fprintln(a.out, "Please log in to continue (leave the email empty to cancel).")

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		a.gate.Cancel(ctx)
		return err
	}
	if email == "" {
		a.gate.Cancel(ctx)
		fmt.Fprintln(a.out, "Login cancelled.")
		return nil
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		a.gate.Cancel(ctx)
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.gate.Cancel(ctx)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", displayName(resp.User))
	target, err := a.gate.CompleteLogin(ctx, resp.Token, resp.User)
	if err != nil {
		return err
	}
	a.log.Debug(ctx, "login resumed", "target", target)
	return nil
}

// gated opens the page behind intent when a credential is held; otherwise
// the intent is remembered and the login form is shown instead.
func (a *App) gated(ctx context.Context, intent session.Intent, open func(ctx context.Context) error) error {
	ok, err := a.gate.RequireAuth(ctx, intent)
	if err != nil {
		return err
	}
	if ok {
		return open(ctx)
	}
	return a.promptLogin(ctx)
}

func (a *App) Signup(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log out first to create another account.")
		return nil
	}

	var form models.SignupForm
	var err error
	defer func() {
		common.WipeByteArray(form.Password)
		common.WipeByteArray(form.ConfirmPassword)
	}()

	if form.Name, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}
	if form.ConfirmPassword, err = getPassword(a.reader, "Confirm password", a.out); err != nil {
		return err
	}
	if form.Gender, err = getSimpleText(a.reader, "Gender (male/female/other, optional)", a.out); err != nil {
		return err
	}
	if form.Whatsapp, err = getSimpleText(a.reader, "WhatsApp number (optional)", a.out); err != nil {
		return err
	}

	if err := a.auth.Signup(ctx, form); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signup successful! Type 'login' to sign in.")
	return nil
}

// Logout asks for confirmation, then drops the session and reloads.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are not logged in.")
		return nil
	}

	ok, err := confirm(a.reader, "Are you sure you want to logout?", a.out)
	if err != nil {
		return err
	}
	err = a.gate.Logout(ctx, ok)
	if errors.Is(err, session.ErrNotConfirmed) {
		fmt.Fprintln(a.out, "Logout cancelled.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) ForgotPassword(ctx context.Context) error {
	return a.router.Navigate(ctx, routes.ForgotPassword)
}

func (a *App) ResetPassword(ctx context.Context) error {
	return a.router.Navigate(ctx, routes.ResetPassword)
}

func (a *App) forgotPasswordForm(ctx context.Context, _ routes.Route) error {
	fmt.Fprintln(a.out, "Forgot your password? We will email you a reset link.")
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.RequestPasswordReset(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password reset link sent to your email.")
	return a.router.Navigate(ctx, routes.Root)
}

func (a *App) resetPasswordForm(ctx context.Context, _ routes.Route) error {
	fmt.Fprintln(a.out, "Reset your password with the token from the email.")
	token, err := getSimpleText(a.reader, "Reset token", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.ConfirmPasswordReset(ctx, token, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password reset successful. You can now log in.")
	return a.router.Navigate(ctx, routes.Root)
}

func displayName(u models.User) string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return "there"
}
