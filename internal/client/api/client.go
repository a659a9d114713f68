// Package api implements the HTTP client of the CyberDetect people-lookup
// service. The repository owns no wire protocol of its own; everything here
// is the consumed contract of the remote backend.
package api

import (
	"context"

	"github.com/cyberdetect/cdetect/internal/client/models"
)

// LoginUser is the optional profile object the login endpoint may include.
type LoginUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// LoginResult is the successful answer of POST /auth/login.
type LoginResult struct {
	Token   string     `json:"token"`
	UserID  string     `json:"userId"`
	Message string     `json:"message"`
	User    *LoginUser `json:"user"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Client is the remote service surface the rest of the client depends on.
type Client interface {
	// Health probes service liveness; used to produce a friendlier error
	// before attempting auth calls. Returns ErrUnavailable when the service
	// cannot be reached on any candidate endpoint.
	Health(ctx context.Context) error

	// Login authenticates and returns the session credentials.
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)

	// Register creates an account. A nil error means the account was created.
	Register(ctx context.Context, req RegisterRequest) error

	// Profile fetches the user's profile with a bearer token. Best-effort:
	// callers fall back to cached data on any error.
	Profile(ctx context.Context, token, userID string) (*models.Profile, error)

	// Search submits a free-text query with an optional category filter and
	// returns the matching rows. An empty slice is a valid no-match answer.
	Search(ctx context.Context, token, query string, category models.SearchCategory) ([]models.Person, error)
}
