package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cyberdetect/cdetect/internal/client/api"
	"github.com/cyberdetect/cdetect/internal/client/services"
)

// Login prompts for credentials and signs the session in. An account the
// service does not know is answered with a hint and an automatic redirect to
// the sign-up page after a short pause, matching the web front-end's flow.
func (a *App) Login(ctx context.Context) error {
	s := a.style()

	if a.isSignedIn() {
		fmt.Fprintln(a.out, s.Note("Already signed in. Type 'logout' first to switch accounts."))
		return nil
	}

	identifier, err := GetSimpleText(a.in, "Email or user id", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}

	msg, err := a.auth.Login(ctx, services.LoginForm{Identifier: identifier, Password: password})
	if err != nil {
		a.reportAuthError(err, "Login failed")
		if errors.Is(err, api.ErrAccountNotFound) {
			fmt.Fprintln(a.out, s.Note("No account found for that identifier. Taking you to sign-up..."))
			sleepFn(a.cfg.RedirectDelay)
			a.Navigate("signup")
		}
		return err
	}

	if msg == "" {
		msg = "Login successful!"
	}
	fmt.Fprintln(a.out, s.Ok(msg))
	sleepFn(a.cfg.RedirectDelay)
	a.Navigate("search")
	return nil
}

// Signup walks the registration form, creates the account and redirects to
// login after a short pause. It never signs the session in by itself.
func (a *App) Signup(ctx context.Context) error {
	s := a.style()

	if a.isSignedIn() {
		fmt.Fprintln(a.out, s.Note("Already signed in."))
		return nil
	}

	form := services.RegisterForm{}
	var err error
	if form.FirstName, err = GetSimpleText(a.in, "First name", a.out); err != nil {
		return err
	}
	if form.LastName, err = GetSimpleText(a.in, "Last name", a.out); err != nil {
		return err
	}
	if form.Email, err = GetSimpleText(a.in, "Email", a.out); err != nil {
		return err
	}
	if form.Password, err = GetPassword("Password", a.out); err != nil {
		return err
	}
	if form.ConfirmPassword, err = GetPassword("Confirm password", a.out); err != nil {
		return err
	}
	if form.AgreeToTerms, err = GetYesNo(a.in, "Do you agree to the terms and conditions?", a.out); err != nil {
		return err
	}

	if err := a.auth.Register(ctx, form); err != nil {
		a.reportAuthError(err, "Registration failed")
		return err
	}

	fmt.Fprintln(a.out, s.Ok("Account created! Redirecting to login..."))
	sleepFn(a.cfg.RedirectDelay)
	a.Navigate("login")
	return nil
}

// Logout clears the session and returns to the home page.
func (a *App) Logout(ctx context.Context) error {
	if !a.isSignedIn() {
		fmt.Fprintln(a.out, a.style().Note("Not signed in."))
		return nil
	}

	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, a.style().Fail("Logout failed: "+err.Error()))
		return err
	}

	fmt.Fprintln(a.out, a.style().Ok("Signed out."))
	a.Navigate("home")
	return nil
}

// reportAuthError turns the service errors into user-facing notices.
func (a *App) reportAuthError(err error, prefix string) {
	s := a.style()

	var verr *services.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(a.out, s.Fail(verr.Error()))
		return
	}

	switch {
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, s.Fail("Cannot reach the CyberDetect service. Is the backend running?"))
	case errors.Is(err, api.ErrAccountNotFound):
		fmt.Fprintln(a.out, s.Fail("Account not found."))
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(a.out, s.Fail("Invalid credentials."))
	default:
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintln(a.out, s.Fail(prefix+": "+apiErr.Message))
			return
		}
		fmt.Fprintln(a.out, s.Fail(prefix+": "+strings.TrimSpace(err.Error())))
	}
}
