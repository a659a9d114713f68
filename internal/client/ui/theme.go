// Package ui provides the themed terminal rendering for the cdetect shell:
// light/dark color themes, derived styles, notices and result tables.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors, identical in both modes.
var (
	colorSuccess = lipgloss.Color("#22c55e")
	colorError   = lipgloss.Color("#ef4444")
	colorWarning = lipgloss.Color("#eab308")
	colorInfo    = lipgloss.Color("#3b82f6")
)

// Theme holds one color scheme. The dark scheme is the product default,
// matching the web front-end.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

func DarkTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#0b1120"),
		Foreground: lipgloss.Color("#e2e8f0"),
		Primary:    lipgloss.Color("#38bdf8"),
		Accent:     lipgloss.Color("#818cf8"),
		Muted:      lipgloss.Color("#64748b"),
		Border:     lipgloss.Color("#1e293b"),
		IsDark:     true,
	}
}

func LightTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#f8fafc"),
		Foreground: lipgloss.Color("#0f172a"),
		Primary:    lipgloss.Color("#0284c7"),
		Accent:     lipgloss.Color("#4f46e5"),
		Muted:      lipgloss.Color("#94a3b8"),
		Border:     lipgloss.Color("#cbd5e1"),
		IsDark:     false,
	}
}

// ThemeByName resolves a persisted theme preference; anything other than
// "light" yields the dark default.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Name returns the persisted identifier for the theme.
func (t Theme) Name() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite scheme.
func (t Theme) Toggle() Theme {
	if t.IsDark {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles are the concrete lipgloss styles derived from a Theme.
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	NavActive   lipgloss.Style
	NavInactive lipgloss.Style
	Card        lipgloss.Style
	Muted       lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Warning     lipgloss.Style
	Info        lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(t.Foreground),
		NavActive:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Underline(true),
		NavInactive: lipgloss.NewStyle().Foreground(t.Muted),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Muted:       lipgloss.NewStyle().Foreground(t.Muted),
		Success:     lipgloss.NewStyle().Foreground(colorSuccess),
		Error:       lipgloss.NewStyle().Foreground(colorError),
		Warning:     lipgloss.NewStyle().Foreground(colorWarning),
		Info:        lipgloss.NewStyle().Foreground(colorInfo),
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		TableCell:   lipgloss.NewStyle().Foreground(t.Foreground),
	}
}
