package cli

import (
	"context"
	"fmt"

	"github.com/cyberdetect/cdetect/internal/client/store"
)

// ToggleTheme flips between the light and dark schemes and persists the
// choice so the next run restores it.
func (a *App) ToggleTheme(ctx context.Context) error {
	a.mu.Lock()
	next := a.theme.Toggle()
	a.mu.Unlock()

	a.setTheme(next)

	if err := store.NewSQLiteStore(a.db).Set(ctx, store.KeyTheme, []byte(next.Name())); err != nil {
		a.log.Warn(ctx, "theme preference not saved", "error", err)
	}

	fmt.Fprintln(a.out, a.style().Note("Switched to the "+next.Name()+" theme."))
	a.renderHeader()
	return nil
}
