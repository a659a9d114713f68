package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cyberdetect/cdetect/internal/client/api"
	"github.com/cyberdetect/cdetect/internal/client/models"
	"github.com/cyberdetect/cdetect/internal/client/services"
	"github.com/cyberdetect/cdetect/internal/client/ui"
)

var resultHeaders = []string{"Name", "Age", "Gender", "Phone", "Email", "Address", "Aadhaar", "PAN", "DL", "Vehicle"}

// Search submits the query under the current category filter and renders the
// result table. A signed-out user is warned and sent to the login page
// without any network traffic.
//
// Responses are tagged with a generation counter; only the answer to the
// most recent query (or clear) is allowed to populate the result state, so a
// stale response can never overwrite a newer one.
func (a *App) Search(ctx context.Context, args []string) error {
	s := a.style()
	query := strings.TrimSpace(strings.Join(args, " "))

	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.query = query
	category := models.SearchCategory(a.category)
	a.page = "search"
	a.mu.Unlock()
	a.renderHeader()

	rows, err := a.search.Search(ctx, query, category)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			fmt.Fprintln(a.out, s.Warn("Please sign in to search."))
			a.Navigate("login")
		case errors.Is(err, services.ErrEmptyQuery):
			fmt.Fprintln(a.out, s.Warn("Type something to search for, e.g. 'search 9876543210'."))
		case errors.Is(err, api.ErrUnauthorized):
			fmt.Fprintln(a.out, s.Fail("Session rejected by the service. Please log in again."))
		case errors.Is(err, api.ErrUnavailable):
			fmt.Fprintln(a.out, s.Fail("Cannot reach the CyberDetect service."))
		default:
			fmt.Fprintln(a.out, s.Fail("Search failed: "+err.Error()))
		}
		return err
	}

	a.mu.Lock()
	if gen != a.gen {
		a.mu.Unlock()
		a.log.Debug(ctx, "stale search response dropped", "query", query)
		return nil
	}
	a.results = a.results[:0]
	for _, p := range rows {
		a.results = append(a.results, resultRow{cells: personCells(p)})
	}
	a.mu.Unlock()

	a.renderResults()
	return nil
}

// SetCategory changes the filter applied to subsequent searches.
func (a *App) SetCategory(args []string) error {
	s := a.style()
	if len(args) != 1 || !models.ValidCategory(models.SearchCategory(args[0])) {
		names := make([]string, len(models.Categories))
		for i, c := range models.Categories {
			names[i] = string(c)
		}
		fmt.Fprintln(a.out, s.Warn("Usage: category <"+strings.Join(names, "|")+">"))
		return services.ErrUnknownCategory
	}

	a.mu.Lock()
	a.category = args[0]
	a.mu.Unlock()
	fmt.Fprintln(a.out, s.Note("Search category set to "+args[0]+"."))
	return nil
}

// ClearSearch resets the query, filter and results. It also bumps the
// generation counter so any in-flight response is discarded.
func (a *App) ClearSearch() {
	a.mu.Lock()
	a.gen++
	a.query = ""
	a.category = string(models.CategoryAll)
	a.results = nil
	a.mu.Unlock()
	fmt.Fprintln(a.out, a.style().Note("Search cleared."))
}

func (a *App) renderResults() {
	s := a.style()

	a.mu.Lock()
	query := a.query
	category := a.category
	rows := make([]resultRow, len(a.results))
	copy(rows, a.results)
	a.mu.Unlock()

	if query == "" {
		fmt.Fprintln(a.out, s.Card.Render("People lookup.\nType 'search <name, phone, address or id>'. Filter with 'category <name>'."))
		return
	}

	if len(rows) == 0 {
		fmt.Fprintln(a.out, s.Note(fmt.Sprintf("No results for %q (category %s).", query, category)))
		return
	}

	tbl := ui.NewSimpleTable(
		fmt.Sprintf("%d result(s) for %q", len(rows), query),
		resultHeaders...)
	for _, r := range rows {
		tbl.AddRow(r.cells...)
	}
	fmt.Fprint(a.out, tbl.View(s))
}

func personCells(p models.Person) []string {
	age := ""
	if p.Age > 0 {
		age = strconv.Itoa(p.Age)
	}
	return []string{
		p.Name, age, p.Gender, p.Phone, p.Email,
		p.Address, p.Aadhaar, p.PAN, p.DL, p.VehicleNumber,
	}
}
