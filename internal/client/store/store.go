// Package store persists the client's local key-value state, the terminal
// equivalent of the localStorage keys the web front-end uses.
package store

import "context"

// Keys owned by the application.
const (
	KeyAuthToken = "authToken"
	KeyUserID    = "userId"
	KeyUserData  = "userData"
	KeyTheme     = "theme"
)

// Store is a persistent key-value store. Get returns (nil, nil) for an
// absent key; callers treat absence and emptiness the same way.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	List(ctx context.Context) (map[string][]byte, error)
}
