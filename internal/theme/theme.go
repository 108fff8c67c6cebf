package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/assignment-tracker/internal/urgency"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite  = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps boxed content such as the help and command views.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// TitleStyle is the bold heading at the top of a view.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	MarginBottom(1)

// ActiveTabStyle and TabStyle render the tab strip.
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorBlue).
			Padding(0, 1)
	TabStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Padding(0, 1)
)

// CursorStyle marks the focused row.
var CursorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue)

// HintStyle is used for keyboard hints and empty-state text.
var HintStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// MessageStyle renders transient status messages; ErrorStyle renders failures.
var (
	MessageStyle = lipgloss.NewStyle().Foreground(ColorYellow).Italic(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
)

// plain disables urgency colors.
var plain bool

// SetPlain turns urgency coloring off (the "plain" display theme).
func SetPlain(on bool) {
	plain = on
}

// UrgencyStyle returns the row style for an urgency bucket. Unclassified
// rows get the terminal's default colors.
func UrgencyStyle(b urgency.Bucket) lipgloss.Style {
	style := lipgloss.NewStyle()
	p, ok := urgency.Colors(b)
	if !ok || plain {
		return style
	}
	return style.
		Background(lipgloss.Color(p.Background)).
		Foreground(lipgloss.Color(p.Foreground))
}

// Legend renders one swatch per urgency bucket.
func Legend() string {
	swatches := make([]string, 0, len(urgency.Buckets))
	for _, b := range urgency.Buckets {
		swatches = append(swatches, UrgencyStyle(b).Padding(0, 1).Render(b.Label()))
	}
	return strings.Join(swatches, " ")
}
