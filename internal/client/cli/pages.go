package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/cyberdetect/cdetect/internal/client/ui"
)

// navLinks in display order; the signed-in set adds the gated pages.
var (
	navPublic   = []string{"home", "about", "pricing", "team", "join"}
	navSignedIn = []string{"home", "about", "pricing", "team", "join", "search", "profile", "aadhaar"}
)

// renderHeader prints the brand line and navigation, highlighting the active
// page. Re-rendered on every navigation and session change.
func (a *App) renderHeader() {
	s := a.style()

	a.mu.Lock()
	page := a.page
	a.mu.Unlock()

	links := navPublic
	right := s.Muted.Render("login · signup")
	if a.isSignedIn() {
		links = navSignedIn
		p := a.session.Profile()
		right = s.Muted.Render(fmt.Sprintf("%s (%s) · logout", p.FullName(), p.Initials()))
	}

	var nav []string
	for _, l := range links {
		if l == page {
			nav = append(nav, s.NavActive.Render(l))
		} else {
			nav = append(nav, s.NavInactive.Render(l))
		}
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, s.Title.Render("CyberDetect")+"  "+strings.Join(nav, "  ")+"  "+right)
}

func (a *App) renderPage(page string) {
	s := a.style()
	switch page {
	case "home":
		a.renderHome(s)
	case "about":
		a.renderAbout(s)
	case "pricing":
		a.renderPricing(s)
	case "team":
		a.renderTeam(s)
	case "join":
		a.renderJoin(s)
	case "login":
		fmt.Fprintln(a.out, s.Card.Render("Sign in to continue.\nType 'login' to enter your credentials, or 'signup' to create an account."))
	case "signup":
		fmt.Fprintln(a.out, s.Card.Render("Create your account.\nType 'signup' to start registration."))
	case "search":
		a.renderResults()
	case "aadhaar":
		fmt.Fprintln(a.out, s.Card.Render("Aadhaar OCR.\nType 'aadhaar <image file>' to extract card details from a scan."))
	}
}

func (a *App) renderHome(s ui.Styles) {
	fmt.Fprintln(a.out, s.Card.Render(strings.Join([]string{
		s.Header.Render("Find anyone. Verify everyone."),
		"CyberDetect searches names, phone numbers, addresses and ID",
		"records in one place, built for investigators and compliance teams.",
		"",
		s.Muted.Render("Sign in and type 'search <text>' to get started."),
	}, "\n")))
}

func (a *App) renderAbout(s ui.Styles) {
	fmt.Fprintln(a.out, s.Card.Render(strings.Join([]string{
		s.Header.Render("About CyberDetect"),
		"Founded in 2021, CyberDetect helps organisations confirm who they",
		"are dealing with. Our index covers identity, contact and vehicle",
		"records, refreshed continuously and served in milliseconds.",
		"",
		"10M+ records indexed  ·  500+ client teams  ·  99.9% uptime",
	}, "\n")))
}

func (a *App) renderPricing(s ui.Styles) {
	tbl := ui.NewSimpleTable("Pricing", "Plan", "Price", "Included")
	tbl.AddRow("Starter", "₹999/mo", "100 lookups, email support")
	tbl.AddRow("Professional", "₹4,999/mo", "2,500 lookups, OCR, priority support")
	tbl.AddRow("Enterprise", "custom", "Unlimited lookups, SLA, dedicated manager")
	fmt.Fprint(a.out, tbl.View(s))
	fmt.Fprintln(a.out, s.Muted.Render("All plans include the full search index and dark mode."))
}

func (a *App) renderTeam(s ui.Styles) {
	tbl := ui.NewSimpleTable("The team", "Name", "Role")
	tbl.AddRow("Arjun Mehta", "Founder & CEO")
	tbl.AddRow("Sana Kapoor", "Head of Engineering")
	tbl.AddRow("Vikram Rao", "Data & Index")
	tbl.AddRow("Leah Fernandes", "Customer Success")
	fmt.Fprint(a.out, tbl.View(s))
}

func (a *App) renderJoin(s ui.Styles) {
	fmt.Fprintln(a.out, s.Card.Render(strings.Join([]string{
		s.Header.Render("Join CyberDetect"),
		"Volunteer   Help verify records and flag stale data.",
		"Partner     Data, technology and distribution partnerships.",
		"Career      We hire across engineering, privacy and design.",
	}, "\n")))

	tbl := ui.NewSimpleTable("Open positions", "Position", "Type")
	tbl.AddRow("Senior Software Engineer", "Full-time")
	tbl.AddRow("Data Privacy Specialist", "Full-time")
	tbl.AddRow("UX/UI Designer", "Contract")
	tbl.AddRow("DevOps Engineer", "Full-time")
	fmt.Fprint(a.out, tbl.View(s))
	fmt.Fprintln(a.out, s.Muted.Render("Applications go to careers@cyberdetect.example."))
}

// ShowProfile renders the profile summary card. The data is best-effort:
// backend first, then the local cache, then placeholders.
func (a *App) ShowProfile(ctx context.Context) error {
	if !a.isSignedIn() {
		s := a.style()
		fmt.Fprintln(a.out, s.Warn("Please sign in to view your profile."))
		a.Navigate("login")
		return nil
	}

	p := a.auth.Profile(ctx)
	s := a.style()

	a.mu.Lock()
	a.page = "profile"
	a.mu.Unlock()
	a.renderHeader()

	fmt.Fprintln(a.out, s.Card.Render(strings.Join([]string{
		s.Header.Render(fmt.Sprintf("(%s) %s", p.Initials(), p.FullName())),
		"Email:  " + p.Email,
		"Member since:  " + p.JoinDate,
	}, "\n")))
	return nil
}
