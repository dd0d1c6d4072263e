package theme

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/playtrack/internal/progress"
)

// Color palette: kid-friendly, bright but not garish.
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Swatch is a favourite-colour choice offered to the player.
type Swatch struct {
	Token progress.ColorToken
	Name  string
	Hex   string
}

var palette = []Swatch{
	{"gamePurple", "Purple", "#8B5CF6"},
	{"gameBlue", "Blue", "#3B82F6"},
	{"gameTeal", "Teal", "#14B8A6"},
	{"gameGreen", "Green", "#22C55E"},
	{"gameYellow", "Yellow", "#EAB308"},
	{"gameOrange", "Orange", "#F97316"},
	{"gameRed", "Red", "#F43F5E"},
	{"gamePink", "Pink", "#EC4899"},
}

// Palette returns the favourite-colour choices in display order.
func Palette() []Swatch {
	out := make([]Swatch, len(palette))
	copy(out, palette)
	return out
}

// Lookup finds a swatch by token or by display name, ignoring case.
func Lookup(s string) (Swatch, bool) {
	for _, sw := range palette {
		if strings.EqualFold(string(sw.Token), s) || strings.EqualFold(sw.Name, s) {
			return sw, true
		}
	}
	return Swatch{}, false
}

// SwatchFor returns the swatch for token, falling back to the default
// colour for tokens this build does not know.
func SwatchFor(token progress.ColorToken) Swatch {
	if sw, ok := Lookup(string(token)); ok {
		return sw
	}
	sw, _ := Lookup(string(progress.DefaultColor))
	return sw
}

// RenderSwatch draws a coloured block followed by the colour name.
func RenderSwatch(token progress.ColorToken) string {
	sw := SwatchFor(token)
	block := lipgloss.NewStyle().Foreground(lipgloss.Color(sw.Hex)).Render("██")
	return block + " " + sw.Name
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Value = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Padding(0, 1)

	Cell = lipgloss.NewStyle().
		Padding(0, 1)
)

// States
var (
	Completed = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ProBadge = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	RookieBadge = lipgloss.NewStyle().
			Foreground(TextDim)
)

// RenderLevel renders an experience level as a badge.
func RenderLevel(l progress.ExperienceLevel) string {
	if l == progress.Pro {
		return ProBadge.Render("★ " + l.DisplayName())
	}
	return RookieBadge.Render("☆ " + l.DisplayName())
}
