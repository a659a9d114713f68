// Package services contains the application services of the cdetect client:
// authentication, people search and the Aadhaar OCR workflow. Services sit
// between the shell and the API client and own every pre-flight check, so no
// invalid or unauthenticated request ever reaches the network.
package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cyberdetect/cdetect/internal/client/api"
	"github.com/cyberdetect/cdetect/internal/client/models"
	"github.com/cyberdetect/cdetect/internal/client/session"
	"github.com/cyberdetect/cdetect/internal/logging"
)

// LoginForm carries the sign-in fields. Both are required; email format is
// left to the server, matching the web front-end.
type LoginForm struct {
	Identifier string `validate:"required"`
	Password   string `validate:"required"`
}

// RegisterForm carries the sign-up fields with the full client-side rules:
// everything required, valid email, password of at least 8 characters,
// matching confirmation and accepted terms.
type RegisterForm struct {
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	AgreeToTerms    bool   `validate:"eq=true"`
}

// AuthService is the only writer of the session store.
//
// Contract:
//   - Login: validate, preflight the backend, authenticate, sign the
//     session in. ErrAccountNotFound passes through so the shell can advise
//     sign-up; ErrUnavailable means the preflight failed.
//   - Register: validate fully client-side, create the account, cache the
//     submitted profile for display.
//   - Profile: best-effort display profile, never an error.
//   - Ping: backend liveness, used by the connectivity watcher.
type AuthService interface {
	Login(ctx context.Context, form LoginForm) (string, error)
	Register(ctx context.Context, form RegisterForm) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) models.Profile
	Ping(ctx context.Context) error
}

type authService struct {
	api     api.Client
	session *session.Manager
	log     logging.Logger
}

// NewAuthService binds the auth flow to an API client and session manager.
func NewAuthService(apiClient api.Client, sess *session.Manager, log logging.Logger) AuthService {
	return &authService{api: apiClient, session: sess, log: log.With("component", "auth")}
}

// Login authenticates against the backend and populates the session.
// It returns the optional server success message for display.
//
// The backend is probed with a lightweight health check first so an
// unreachable service produces an actionable error instead of a raw
// transport failure; the health probe (with its alternate-endpoint retry)
// is the only retry on this path.
func (a *authService) Login(ctx context.Context, form LoginForm) (string, error) {
	if err := checkStruct(form); err != nil {
		return "", err
	}

	if err := a.api.Health(ctx); err != nil {
		return "", fmt.Errorf("backend preflight failed: %w", err)
	}

	result, err := a.api.Login(ctx, form.Identifier, form.Password)
	if err != nil {
		return "", err
	}

	if result.Token == "" {
		return "", api.ErrBadResponse
	}
	userID := result.UserID
	if userID == "" {
		userID = "user_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	var profile *models.Profile
	if result.User != nil {
		profile = &models.Profile{
			FirstName: result.User.FirstName,
			LastName:  result.User.LastName,
			Email:     result.User.Email,
			JoinDate:  result.User.CreatedAt,
		}
	}

	if err := a.session.SignIn(ctx, result.Token, userID, profile); err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}
	return result.Message, nil
}

// Register creates the account and caches the submitted profile locally so
// the navigation shell has something to display after the follow-up login.
func (a *authService) Register(ctx context.Context, form RegisterForm) error {
	if err := checkStruct(form); err != nil {
		return err
	}

	if err := a.api.Health(ctx); err != nil {
		return fmt.Errorf("backend preflight failed: %w", err)
	}

	err := a.api.Register(ctx, api.RegisterRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		return err
	}

	cached := models.Profile{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		JoinDate:  time.Now().Format("2006-01-02"),
	}
	if err := a.session.SaveProfile(ctx, cached); err != nil {
		// registration itself succeeded; the cache is display-only
		a.log.Warn(ctx, "profile cache write failed", "error", err)
	}
	return nil
}

// Logout clears the session. The shell handles post-logout navigation.
func (a *authService) Logout(ctx context.Context) error {
	return a.session.SignOut(ctx)
}

// Profile returns the freshest display profile available: the backend if it
// answers, else the local cache, else placeholders. Failures are logged and
// swallowed; this data is never authoritative.
func (a *authService) Profile(ctx context.Context) models.Profile {
	cur := a.session.Current()
	if !cur.Authenticated() {
		return a.session.Profile()
	}

	remote, err := a.api.Profile(ctx, cur.Token, cur.UserID)
	if err != nil {
		a.log.Debug(ctx, "profile fetch failed, using cache", "error", err)
		return a.session.Profile()
	}

	if err := a.session.SaveProfile(ctx, *remote); err != nil {
		a.log.Warn(ctx, "profile cache write failed", "error", err)
	}
	return *remote
}

func (a *authService) Ping(ctx context.Context) error {
	return a.api.Health(ctx)
}
