// Package session is the single source of truth for "is there a signed-in
// user". State is derived from the persistent local store; this manager is
// the only writer, through explicit SignIn/SignOut, while any component may
// read or subscribe.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/cyberdetect/cdetect/internal/client/models"
	"github.com/cyberdetect/cdetect/internal/client/store"
	"github.com/cyberdetect/cdetect/internal/dbx"
	"github.com/cyberdetect/cdetect/internal/logging"
)

// Event describes a session change delivered to subscribers.
type Event struct {
	Session models.Session
	Profile models.Profile
}

// Manager caches the session read from the local store and fans out change
// events. Concurrent SignIn/SignOut from two processes sharing the store
// race with last-writer-wins semantics; there is no conflict detection.
type Manager struct {
	db  *sql.DB
	log logging.Logger

	mu      sync.RWMutex
	cur     models.Session
	profile models.Profile

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

func NewManager(db *sql.DB, log logging.Logger) *Manager {
	return &Manager{
		db:   db,
		log:  log.With("component", "session"),
		subs: make(map[int]chan Event),
	}
}

func (m *Manager) kv() *store.SQLiteStore {
	return store.NewSQLiteStore(m.db)
}

// Load reads the session keys from the store into memory. Authenticated
// means both token and user id present and non-empty; no validity or expiry
// check is ever performed on the token.
func (m *Manager) Load(ctx context.Context) error {
	kv := m.kv()

	token, err := kv.Get(ctx, store.KeyAuthToken)
	if err != nil {
		return err
	}
	userID, err := kv.Get(ctx, store.KeyUserID)
	if err != nil {
		return err
	}

	profile := models.Profile{}
	if raw, err := kv.Get(ctx, store.KeyUserData); err == nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, &profile); err != nil {
			m.log.Warn(ctx, "corrupt profile cache ignored", "error", err)
			profile = models.Profile{}
		}
	}

	m.mu.Lock()
	m.cur = models.Session{Token: string(token), UserID: string(userID)}
	m.profile = profile
	m.mu.Unlock()
	return nil
}

// Current returns the in-memory session snapshot.
func (m *Manager) Current() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

// Authenticated reports whether a signed-in user is present.
func (m *Manager) Authenticated() bool {
	return m.Current().Authenticated()
}

// Profile returns the cached display profile, falling back to placeholder
// values when nothing usable is cached. Never authoritative.
func (m *Manager) Profile() models.Profile {
	m.mu.RLock()
	p := m.profile
	m.mu.RUnlock()
	if p == (models.Profile{}) {
		return models.PlaceholderProfile()
	}
	return p
}

// SignIn persists the credentials and optional profile cache in one
// transaction, updates the snapshot and notifies subscribers. Last writer
// wins; there is no locking against another process.
func (m *Manager) SignIn(ctx context.Context, token, userID string, profile *models.Profile) error {
	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := store.NewSQLiteStore(tx)
		if err := kv.Set(ctx, store.KeyAuthToken, []byte(token)); err != nil {
			return err
		}
		if err := kv.Set(ctx, store.KeyUserID, []byte(userID)); err != nil {
			return err
		}
		if profile != nil {
			raw, err := json.Marshal(profile)
			if err != nil {
				return err
			}
			return kv.Set(ctx, store.KeyUserData, raw)
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.cur = models.Session{Token: token, UserID: userID}
	if profile != nil {
		m.profile = *profile
	}
	m.mu.Unlock()

	m.log.Info(ctx, "signed in", "user_id", userID)
	m.notify()
	return nil
}

// SignOut clears every session key regardless of prior state, updates the
// snapshot and notifies subscribers. Navigation back to the home view is the
// caller's job.
func (m *Manager) SignOut(ctx context.Context) error {
	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := store.NewSQLiteStore(tx)
		for _, key := range []string{store.KeyAuthToken, store.KeyUserID, store.KeyUserData} {
			if err := kv.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.cur = models.Session{}
	m.profile = models.Profile{}
	m.mu.Unlock()

	m.log.Info(ctx, "signed out")
	m.notify()
	return nil
}

// SaveProfile replaces the cached display profile without touching the
// credentials. Used after sign-up, which caches the submitted form.
func (m *Manager) SaveProfile(ctx context.Context, p models.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := m.kv().Set(ctx, store.KeyUserData, raw); err != nil {
		return err
	}

	m.mu.Lock()
	m.profile = p
	m.mu.Unlock()
	return nil
}

// Subscribe registers a change listener. The returned cancel func must be
// called to release it. Events are delivered best-effort: a subscriber that
// is not draining its channel misses intermediate events.
func (m *Manager) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 4)

	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = ch
	m.subMu.Unlock()

	cancel := func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
	return ch, cancel
}

func (m *Manager) notify() {
	m.mu.RLock()
	ev := Event{Session: m.cur, Profile: m.profile}
	m.mu.RUnlock()

	m.subMu.Lock()
	defer m.subMu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
