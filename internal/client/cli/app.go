// Package cli implements the interactive terminal shell of the cdetect
// client: the command loop, the navigation header with its static pages,
// the gated people search, the profile view and the Aadhaar OCR workflow.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/cyberdetect/cdetect/internal/client/api"
	"github.com/cyberdetect/cdetect/internal/client/config"
	"github.com/cyberdetect/cdetect/internal/client/services"
	"github.com/cyberdetect/cdetect/internal/client/session"
	"github.com/cyberdetect/cdetect/internal/client/store"
	"github.com/cyberdetect/cdetect/internal/client/ui"
	"github.com/cyberdetect/cdetect/internal/filex"
	"github.com/cyberdetect/cdetect/internal/logging"
)

// Mode is the backend connectivity state shown in the prompt.
type Mode string

const (
	ModeUnknown Mode = "…"
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// sleepFn is a seam for the post-auth redirect pause; tests replace it.
var sleepFn = time.Sleep

// App wires the services together and drives the shell.
type App struct {
	cfg *config.Config
	log logging.Logger

	db      *sql.DB
	session *session.Manager
	auth    services.AuthService
	search  services.SearchService
	ocr     services.OCRService

	in  *bufio.Reader
	out io.Writer

	mu       sync.Mutex
	theme    ui.Theme
	styles   ui.Styles
	mode     Mode
	page     string
	query    string
	category string
	results  []resultRow
	gen      uint64
}

type resultRow struct {
	cells []string
}

// NewApp opens the local state database, restores the persisted session and
// theme, and builds the service stack over the configured endpoints.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	dir, err := filex.EnsureDataDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	db, err := store.InitDatabase(ctx, filepath.Join(dir, cfg.DBFile))
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	sess := session.NewManager(db, log)
	if err := sess.Load(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	apiClient := api.NewHTTPClient(cfg.Endpoints, cfg.RequestTimeout, log)

	a := &App{
		cfg:      cfg,
		log:      log.With("component", "cli"),
		db:       db,
		session:  sess,
		auth:     services.NewAuthService(apiClient, sess, log),
		search:   services.NewSearchService(apiClient, sess, log),
		ocr:      services.NewOCRService(cfg.OCRStageDelay, log),
		in:       bufio.NewReader(in),
		out:      out,
		mode:     ModeUnknown,
		page:     "home",
		category: "all",
	}

	name := ""
	if raw, err := store.NewSQLiteStore(db).Get(ctx, store.KeyTheme); err == nil {
		name = string(raw)
	}
	a.setTheme(ui.ThemeByName(name))

	return a, nil
}

// Close releases the local state database.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) setTheme(t ui.Theme) {
	a.mu.Lock()
	a.theme = t
	a.styles = ui.NewStyles(t)
	a.mu.Unlock()
}

func (a *App) style() ui.Styles {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.styles
}

func (a *App) isSignedIn() bool {
	return a.session.Authenticated()
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// status is rendered into the REPL prompt: connectivity, current page and,
// when signed in, the user's initials.
func (a *App) status() string {
	a.mu.Lock()
	mode, page := a.mode, a.page
	a.mu.Unlock()

	s := fmt.Sprintf("[%s] %s", mode, page)
	if a.isSignedIn() {
		s += " " + a.session.Profile().Initials()
	}
	return s
}

// Run restores the UI, starts the background watchers and enters the command
// loop. It returns when the user exits or the input stream ends.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.session.StartWatcher(ctx, a.cfg.SessionPollInterval)
	go a.watchConnectivity(ctx)
	go a.watchSession(ctx)

	a.renderHeader()
	a.Navigate("home")

	scanner := bufio.NewScanner(a.in)
	runREPL(ctx, a, a.status, scanner)
	return scanner.Err()
}

// watchConnectivity probes the backend on a ticker and records the result
// for the prompt. The first probe runs immediately.
func (a *App) watchConnectivity(ctx context.Context) {
	probe := func() {
		pctx, cancel := context.WithTimeout(ctx, a.cfg.HealthCheckInterval)
		err := a.auth.Ping(pctx)
		cancel()

		next := ModeOnline
		if err != nil {
			next = ModeOffline
		}

		a.mu.Lock()
		prev := a.mode
		a.mode = next
		a.mu.Unlock()

		if prev != next && prev != ModeUnknown {
			a.log.Info(ctx, "connectivity changed", "mode", string(next))
		}
	}

	probe()
	ticker := time.NewTicker(a.cfg.HealthCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			probe()
		case <-ctx.Done():
			return
		}
	}
}

// watchSession re-renders the header whenever the session changes, including
// a sign-out performed by another process sharing the store.
func (a *App) watchSession(ctx context.Context) {
	events, cancel := a.session.Subscribe()
	defer cancel()

	for {
		select {
		case ev := <-events:
			if !ev.Session.Authenticated() {
				a.mu.Lock()
				a.results = nil
				a.query = ""
				a.mu.Unlock()
			}
			a.renderHeader()
		case <-ctx.Done():
			return
		}
	}
}

// Navigate records the active page and renders it. Unknown names fall back
// to home.
func (a *App) Navigate(page string) {
	switch page {
	case "home", "about", "pricing", "team", "join", "login", "signup", "search", "profile", "aadhaar":
	default:
		page = "home"
	}

	a.mu.Lock()
	a.page = page
	a.mu.Unlock()

	a.renderHeader()
	a.renderPage(page)
}
